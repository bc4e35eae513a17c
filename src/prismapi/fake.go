package prismapi

import "github.com/google/uuid"

// FakeClient is an in-memory implementation for unit tests. Domains maps
// a protection domain name to its member VMs, CategoryValues declares
// which Key:Value pairs exist on the fake cluster, and Tags records the
// categories applied to each VM UUID.
type FakeClient struct {
	Domains        map[string][]EntityRef
	CategoryValues map[string]map[string]bool
	Tags           map[string]map[string]string

	// DetachErr and AttachErr force per-VM failures, keyed by VM name.
	DetachErr map[string]error
	AttachErr map[string]error
}

func NewFake() *FakeClient {
	return &FakeClient{
		Domains:        map[string][]EntityRef{},
		CategoryValues: map[string]map[string]bool{},
		Tags:           map[string]map[string]string{},
		DetachErr:      map[string]error{},
		AttachErr:      map[string]error{},
	}
}

// SeedDomain registers a protection domain whose members are VMs with
// the given names, each assigned a fresh UUID. Returns the member refs.
func (f *FakeClient) SeedDomain(domain string, names ...string) []EntityRef {
	refs := make([]EntityRef, 0, len(names))
	for _, n := range names {
		refs = append(refs, EntityRef{UUID: uuid.NewString(), Name: n})
	}
	f.Domains[domain] = refs
	return refs
}

// DeclareCategory registers a category value as existing on the cluster.
func (f *FakeClient) DeclareCategory(key, value string) {
	if f.CategoryValues[key] == nil {
		f.CategoryValues[key] = map[string]bool{}
	}
	f.CategoryValues[key][value] = true
}

func (f *FakeClient) ListProtectionDomainEntities(domain string) ([]EntityRef, error) {
	members, ok := f.Domains[domain]
	if !ok {
		return nil, &NotFoundError{Resource: "protection domain", Name: domain}
	}
	out := make([]EntityRef, len(members))
	copy(out, members)
	return out, nil
}

func (f *FakeClient) DetachEntityFromDomain(domain string, entity EntityRef) error {
	if err := f.DetachErr[entity.Name]; err != nil {
		return err
	}
	members, ok := f.Domains[domain]
	if !ok {
		return &NotFoundError{Resource: "protection domain", Name: domain}
	}
	for i, m := range members {
		if m.UUID == entity.UUID {
			f.Domains[domain] = append(members[:i:i], members[i+1:]...)
			return nil
		}
	}
	return &ConflictError{Resource: "vm", Name: entity.Name}
}

func (f *FakeClient) AttachEntityToCategory(entity EntityRef, key, value string) error {
	if err := f.AttachErr[entity.Name]; err != nil {
		return err
	}
	if !f.CategoryValues[key][value] {
		return &NotFoundError{Resource: "category", Name: key + ":" + value}
	}
	if f.Tags[entity.UUID] == nil {
		f.Tags[entity.UUID] = map[string]string{}
	}
	// re-applying an existing tag is a no-op, like the v3 PUT
	f.Tags[entity.UUID][key] = value
	return nil
}
