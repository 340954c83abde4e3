package convertcmd

import (
	"errors"
	"testing"
)

type recordingRegistry struct {
	handlers []any
	err      error
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	if r.err != nil {
		return r.err
	}
	r.handlers = append(r.handlers, handler)
	return nil
}

func TestRegisterConvertCommands(t *testing.T) {
	reg := &recordingRegistry{}

	set, err := RegisterConvertCommands(reg, &stubConverter{}, &stubRunner{}, nil, FeatureGates{})
	if err != nil {
		t.Fatalf("RegisterConvertCommands: %v", err)
	}

	if set == nil || set.File == nil || set.Directory == nil {
		t.Fatalf("expected complete handler set, got %+v", set)
	}
	if len(reg.handlers) != 2 {
		t.Fatalf("expected 2 registered handlers, got %d", len(reg.handlers))
	}
}

func TestRegisterConvertCommandsNilRegistry(t *testing.T) {
	set, err := RegisterConvertCommands(nil, &stubConverter{}, &stubRunner{}, nil, FeatureGates{})
	if err != nil {
		t.Fatalf("RegisterConvertCommands: %v", err)
	}
	if set == nil || set.File == nil || set.Directory == nil {
		t.Fatal("expected handlers even without a registry")
	}
}

func TestRegisterConvertCommandsRequiresService(t *testing.T) {
	if _, err := RegisterConvertCommands(&recordingRegistry{}, nil, &stubRunner{}, nil, FeatureGates{}); err == nil {
		t.Fatal("expected error when service is nil")
	}
}

func TestRegisterConvertCommandsRequiresRunner(t *testing.T) {
	if _, err := RegisterConvertCommands(&recordingRegistry{}, &stubConverter{}, nil, nil, FeatureGates{}); err == nil {
		t.Fatal("expected error when runner is nil")
	}
}

func TestRegisterConvertCommandsPropagatesRegistryError(t *testing.T) {
	reg := &recordingRegistry{err: errors.New("registry full")}

	if _, err := RegisterConvertCommands(reg, &stubConverter{}, &stubRunner{}, nil, FeatureGates{}); err == nil {
		t.Fatal("expected registry error to propagate")
	}
}
