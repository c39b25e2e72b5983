package model

// ModuleUsage is the analysis result for one schema module: the set of
// non-builtin type names its documents reference, in first-seen order.
type ModuleUsage struct {
	Module    string         `yaml:"module" json:"module"`
	Sources   []string       `yaml:"sources" json:"sources"`
	UsedTypes []string       `yaml:"used_types" json:"used_types"`
	Kinds     map[string]int `yaml:"kinds,omitempty" json:"kinds,omitempty"` // pluralized kind label → declared count
}

// Report aggregates per-module usage for one analysis run. Modules are
// ordered by name; UsedTypes is the order-preserving union across modules.
type Report struct {
	Modules   []*ModuleUsage `yaml:"modules" json:"modules"`
	UsedTypes []string       `yaml:"used_types" json:"used_types"`
}

// Module returns the entry for the named module, or nil.
func (r *Report) Module(name string) *ModuleUsage {
	for _, m := range r.Modules {
		if m.Module == name {
			return m
		}
	}
	return nil
}
