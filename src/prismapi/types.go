package prismapi

// EntityRef identifies a VM on the cluster. The v2.0 protection domain
// endpoints key on the VM name while the v3 endpoints key on the UUID,
// so both travel together.
type EntityRef struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// Client is a narrow interface over the Prism APIs used by our app.
// Keep it small and focused on what we actually need so it stays mockable.
type Client interface {
	// ListProtectionDomainEntities returns the VMs that are members of the
	// named protection domain, in the order the API reports them.
	ListProtectionDomainEntities(domain string) ([]EntityRef, error)

	// DetachEntityFromDomain unprotects one VM, removing it from the domain.
	DetachEntityFromDomain(domain string, entity EntityRef) error

	// AttachEntityToCategory tags one VM with a category value. The value
	// must already exist on the cluster.
	AttachEntityToCategory(entity EntityRef, key, value string) error
}
