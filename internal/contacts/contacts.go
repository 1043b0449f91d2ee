// Package contacts ships the built-in emergency contact directory. The
// list is static: it must stay reachable when the backing store is not.
package contacts

// Type classifies a contact.
type Type string

const (
	TypeEmergency Type = "emergency"
	TypeMedical   Type = "medical"
	TypeFire      Type = "fire"
	TypePolice    Type = "police"
	TypeUtility   Type = "utility"
	TypeCommunity Type = "community"
)

// Contact is one entry in the emergency directory.
type Contact struct {
	ID           string
	Name         string
	Phone        string
	Type         Type
	Description  string
	Available24h bool
}

var directory = []Contact{
	{ID: "1", Name: "Emergency Services", Phone: "911", Type: TypeEmergency, Description: "Police, Fire, Medical Emergency", Available24h: true},
	{ID: "2", Name: "Police Department", Phone: "(555) 123-4567", Type: TypePolice, Description: "Non-emergency police line", Available24h: true},
	{ID: "3", Name: "Fire Department", Phone: "(555) 234-5678", Type: TypeFire, Description: "Fire prevention and safety", Available24h: true},
	{ID: "4", Name: "Medical Center", Phone: "(555) 345-6789", Type: TypeMedical, Description: "Green Valley Medical Center", Available24h: true},
	{ID: "5", Name: "Power Company", Phone: "(555) 456-7890", Type: TypeUtility, Description: "Power outage reporting", Available24h: true},
	{ID: "6", Name: "Road Services", Phone: "(555) 567-8901", Type: TypeUtility, Description: "Road maintenance and issues", Available24h: false},
	{ID: "7", Name: "Community Watch", Phone: "(555) 678-9012", Type: TypeCommunity, Description: "Neighborhood safety coordinator", Available24h: false},
}

// Directory returns a copy of the emergency contact list.
func Directory() []Contact {
	out := make([]Contact, len(directory))
	copy(out, directory)
	return out
}
