package control

// PropertyInfo describes one exposed property for external designer
// tooling: a property grid displays the name, category, and description,
// and hides entries with Browsable false. The runtime never branches on
// this data.
type PropertyInfo struct {
	Name        string
	Category    string
	Description string
	Browsable   bool
}

// MetadataProvider is implemented by controls that publish a property
// descriptor table.
type MetadataProvider interface {
	Properties() []PropertyInfo
}

// BrowsableProperties filters a descriptor table to the entries a property
// grid should display.
func BrowsableProperties(p MetadataProvider) []PropertyInfo {
	if p == nil {
		return nil
	}
	var out []PropertyInfo
	for _, info := range p.Properties() {
		if info.Browsable {
			out = append(out, info)
		}
	}
	return out
}
