package models

// Profile holds the establishment details shown on the home screen.
// There is exactly one profile; when nothing has been saved yet the
// defaults below apply.
type Profile struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// DefaultProfile returns the placeholder profile used until the owner
// saves their own details.
func DefaultProfile() Profile {
	return Profile{
		Name:     "Hotel Name",
		Address:  "Address",
		Location: "Location",
		Phone:    "Phone Number",
	}
}

// WithDefaults fills any empty field from the default profile.
func (p Profile) WithDefaults() Profile {
	def := DefaultProfile()
	if p.Name == "" {
		p.Name = def.Name
	}
	if p.Address == "" {
		p.Address = def.Address
	}
	if p.Location == "" {
		p.Location = def.Location
	}
	if p.Phone == "" {
		p.Phone = def.Phone
	}
	return p
}
