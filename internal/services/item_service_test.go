package services

import (
	"strings"
	"testing"

	"posada/internal/models"
	"posada/internal/testutil"
)

func TestCreateItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		item, err := svc.CreateItem("Coffee", 3.50, models.CategoryDrink, "")
		testutil.AssertNoError(t, err)

		if item.ID == 0 {
			t.Fatal("expected non-zero item ID")
		}
		if item.Name != "Coffee" {
			t.Errorf("expected name Coffee, got %s", item.Name)
		}
		testutil.AssertAmount(t, item.Price, 3.50)
		if item.Image != models.DefaultItemImage {
			t.Errorf("expected default image, got %s", item.Image)
		}
	})

	t.Run("explicit_image_kept", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		item, err := svc.CreateItem("Cake", 6.00, models.CategoryDessert, "data:image/png;base64,AAAA")
		testutil.AssertNoError(t, err)
		if item.Image != "data:image/png;base64,AAAA" {
			t.Errorf("expected provided image kept, got %s", item.Image)
		}
	})

	t.Run("zero_price_allowed", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		_, err := svc.CreateItem("Tap Water", 0, models.CategoryDrink, "")
		testutil.AssertNoError(t, err)
	})

	t.Run("negative_price", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		_, err := svc.CreateItem("Oops", -1.00, models.CategoryFood, "")
		testutil.AssertAppError(t, err, "INVALID_PRICE")
	})

	t.Run("unknown_category", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		_, err := svc.CreateItem("Mystery", 1.00, models.Category("gadget"), "")
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("ids_unique_across_rapid_creates", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		seen := make(map[int64]bool)
		for i := 0; i < 100; i++ {
			item, err := svc.CreateItem("Bulk", 1.00, models.CategoryOther, "")
			testutil.AssertNoError(t, err)
			if seen[item.ID] {
				t.Fatalf("duplicate id %d", item.ID)
			}
			seen[item.ID] = true
		}
	})
}

func TestListItems(t *testing.T) {
	t.Run("insertion_order", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		testutil.CreateTestItemWithName(t, st, "First", 1.00, models.CategoryFood)
		testutil.CreateTestItemWithName(t, st, "Second", 2.00, models.CategoryDrink)

		items := svc.ListItems()
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].Name != "First" || items[1].Name != "Second" {
			t.Errorf("expected insertion order, got %q, %q", items[0].Name, items[1].Name)
		}
	})
}

func TestGetItemByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		created := testutil.CreateTestItemWithName(t, st, "Coffee", 3.50, models.CategoryDrink)

		item, err := svc.GetItemByID(created.ID)
		testutil.AssertNoError(t, err)
		if item.Name != "Coffee" {
			t.Errorf("expected Coffee, got %s", item.Name)
		}
	})

	t.Run("missing", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		_, err := svc.GetItemByID(42)
		testutil.AssertAppError(t, err, "ITEM_NOT_FOUND")
	})
}

func TestEditItem(t *testing.T) {
	t.Run("replaces_name_and_price", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		created := testutil.CreateTestItemWithName(t, st, "Coffee", 3.50, models.CategoryDrink)

		updated, err := svc.EditItem(created.ID, "Espresso", 4.00)
		testutil.AssertNoError(t, err)
		if updated.Name != "Espresso" {
			t.Errorf("expected new name, got %s", updated.Name)
		}
		testutil.AssertAmount(t, updated.Price, 4.00)
		if updated.Category != models.CategoryDrink {
			t.Errorf("expected category untouched, got %s", updated.Category)
		}
		if updated.ID != created.ID {
			t.Errorf("expected id untouched, got %d", updated.ID)
		}
	})

	t.Run("missing_item", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		_, err := svc.EditItem(99999, "Ghost", 1.00)
		testutil.AssertAppError(t, err, "ITEM_NOT_FOUND")
	})

	t.Run("after_delete", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		item := testutil.CreateTestItem(t, st, 2.00, models.CategoryFood)
		removed, err := svc.DeleteItem(item.ID)
		testutil.AssertNoError(t, err)
		if !removed {
			t.Fatal("expected removal")
		}

		_, err = svc.EditItem(item.ID, "Zombie", 1.00)
		testutil.AssertAppError(t, err, "ITEM_NOT_FOUND")
	})

	t.Run("invalid_price", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		item := testutil.CreateTestItem(t, st, 2.00, models.CategoryFood)
		_, err := svc.EditItem(item.ID, "Still Fine", -0.01)
		testutil.AssertAppError(t, err, "INVALID_PRICE")
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		item := testutil.CreateTestItem(t, st, 2.00, models.CategoryFood)

		removed, err := svc.DeleteItem(item.ID)
		testutil.AssertNoError(t, err)
		if !removed {
			t.Error("expected first delete to remove")
		}

		removed, err = svc.DeleteItem(item.ID)
		testutil.AssertNoError(t, err)
		if removed {
			t.Error("expected second delete to be a no-op")
		}
	})

	t.Run("keeps_other_items", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		keep := testutil.CreateTestItemWithName(t, st, "Keep", 1.00, models.CategoryFood)
		drop := testutil.CreateTestItemWithName(t, st, "Drop", 2.00, models.CategoryDrink)

		_, err := svc.DeleteItem(drop.ID)
		testutil.AssertNoError(t, err)

		items := svc.ListItems()
		if len(items) != 1 || items[0].ID != keep.ID {
			t.Errorf("expected only the kept item, got %+v", items)
		}
	})
}

func TestEncodeImage(t *testing.T) {
	t.Run("valid_png", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		encoded, err := svc.EncodeImage([]byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
		testutil.AssertNoError(t, err)
		if !strings.HasPrefix(encoded, "data:image/png;base64,") {
			t.Errorf("expected data URI, got %s", encoded)
		}
	})

	t.Run("not_an_image", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		_, err := svc.EncodeImage([]byte("hello"), "text/plain")
		testutil.AssertAppError(t, err, "INVALID_IMAGE")
	})

	t.Run("too_large", func(t *testing.T) {
		st := testutil.SetupTestState(t)
		svc := NewItemService(st, "")

		_, err := svc.EncodeImage(make([]byte, maxImageBytes+1), "image/jpeg")
		testutil.AssertAppError(t, err, "IMAGE_TOO_LARGE")
	})
}
