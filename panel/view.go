package panel

// View is what the site shows for a given location fragment.
type View string

const (
	ViewPublic View = "public"
	ViewAdmin  View = "admin"
)

// ResolveView maps a location fragment to a view. Only the exact fragment
// "admin" selects the admin panel; anything else, including the empty
// fragment on initial load, selects the public site. Pure and idempotent.
func ResolveView(fragment string) View {
	if fragment == "admin" {
		return ViewAdmin
	}
	return ViewPublic
}
