package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/halbind/halbind/config"
	"github.com/halbind/halbind/core"
	"github.com/halbind/halbind/faults"
	"github.com/halbind/halbind/internal/cli/common"
)

type Dependencies struct {
	Contexts  config.ContextService
	Bootstrap core.BootstrapConfig
}

func (d Dependencies) commandDependencies() common.CommandDependencies {
	return common.CommandDependencies{
		Contexts:  d.Contexts,
		Bootstrap: d.Bootstrap,
	}
}

func Execute(deps Dependencies) error {
	root := NewRootCommand(deps)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), strings.TrimSpace(err.Error()))
		return err
	}
	return nil
}

func ExitCodeForError(err error) int {
	if err == nil {
		return 0
	}

	var typedErr *faults.TypedError
	if !errors.As(err, &typedErr) {
		return 1
	}

	switch typedErr.Category {
	case faults.ValidationError, faults.MetadataError:
		return 2
	case faults.NotFoundError:
		return 3
	case faults.AuthError:
		return 4
	case faults.ParseError:
		return 5
	case faults.TransportError:
		return 6
	default:
		return 1
	}
}
