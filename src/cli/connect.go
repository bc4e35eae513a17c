package cli

import (
	"pdmove/src/config"
	"pdmove/src/prismapi"
)

// connect builds the API client for a loaded config. The Prism Central
// endpoint is only dialled by category operations, so a list-only config
// with no pc_ip still yields a usable client.
func connect(cfg *config.Config) prismapi.Client {
	pe := prismapi.Endpoint{
		Host:     cfg.ClusterIP,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
	}
	pc := prismapi.Endpoint{
		Host:     cfg.PCIP,
		Port:     cfg.Port,
		Username: cfg.PCUsername,
		Password: cfg.PCPassword,
	}
	return prismapi.Connect(pe, pc, cfg.Insecure)
}
