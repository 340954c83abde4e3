package convertcmd

// FeatureGates exposes runtime feature toggles required by convert command handlers.
// Callers should supply closures that read from docx.Config.Features so handlers
// stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	BatchEnabled func() bool
}

func (g FeatureGates) batchEnabled() bool {
	if g.BatchEnabled == nil {
		return true
	}
	return g.BatchEnabled()
}
