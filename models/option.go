package models

// AppointmentOption is one treatment type together with its catalog of
// bookable time slots. The catalog is loaded by a seed step and read-only
// at runtime.
type AppointmentOption struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`       // Treatment identifier, e.g. "Teeth Orthodontics"
	Price float64  `bson:"price" json:"price"`     // Consultation fee
	Slots []string `bson:"slots" json:"slots"`     // Ordered time slots, e.g. "8.00 AM - 8.30 AM"
	Image string   `bson:"image,omitempty" json:"image,omitempty"`
}
