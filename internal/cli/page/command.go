package page

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/halbind/halbind/binding"
	"github.com/halbind/halbind/config"
	"github.com/halbind/halbind/core"
	"github.com/halbind/halbind/internal/cli/common"
	"github.com/halbind/halbind/orchestrator"
)

func NewCommand(deps common.CommandDependencies, groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "page",
		GroupID: groupID,
		Short:   "Hydrate page placeholders from the hypermedia API",
	}
	cmd.AddCommand(newRenderCommand(deps))
	return cmd
}

// boundElement pairs a manifest selector with the recorder that captures its
// rendered fragment.
type boundElement struct {
	key      string
	selector string
	recorder *binding.Recorder
}

func newRenderCommand(deps common.CommandDependencies) *cobra.Command {
	var manifestPath string
	var entityType string
	var entityID string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Resolve every placeholder of a page and print the fragments",
		Example: `  # Hydrate the page described by page.yaml
  halbind page render --manifest page.yaml

  # Override the entity the manifest points at
  halbind page render --manifest page.yaml --type user --id ggrossetie`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			if entityType == "" {
				entityType = manifest.Page.Type
			}
			if entityID == "" {
				entityID = manifest.Page.ID
			}

			hal, err := core.NewHalbindContext(cmd.Context(), deps.Bootstrap, config.ContextSelection{
				Name: common.ContextName(cmd.Context()),
			})
			if err != nil {
				return err
			}

			elements, placeholders := bindManifest(manifest)
			if impl, ok := hal.Orchestrator.(*orchestrator.DefaultOrchestrator); ok {
				impl.Observer = &streamObserver{writer: cmd.ErrOrStderr()}
			}

			// A failed branch is local to its fields: fragments that did
			// resolve are printed even when Hydrate reports an error.
			result, hydrateErr := hal.Orchestrator.Hydrate(cmd.Context(), orchestrator.PageMetadata{
				APIKey:     hal.Config.API.APIKey,
				EntityType: orchestrator.EntityType(entityType),
				EntityID:   entityID,
			}, placeholders)

			for _, element := range elements {
				if !element.recorder.Resolved() {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", element.selector, element.recorder.Fragment())
			}
			for _, key := range result.Unresolved {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: placeholder %q never resolved\n", key)
			}
			return hydrateErr
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the page manifest YAML")
	cmd.Flags().StringVar(&entityType, "type", "", "Entity type: domain, group, or user (overrides the manifest)")
	cmd.Flags().StringVar(&entityID, "id", "", "Entity id (overrides the manifest)")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}

func bindManifest(manifest Manifest) ([]boundElement, map[string][]binding.Target) {
	keys := make([]string, 0, len(manifest.Placeholders))
	for key := range manifest.Placeholders {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var elements []boundElement
	placeholders := make(map[string][]binding.Target, len(keys))
	for _, key := range keys {
		selectors := manifest.Placeholders[key]
		if len(selectors) == 0 {
			selectors = []string{"#" + key}
		}
		for _, selector := range selectors {
			recorder := binding.NewRecorder()
			elements = append(elements, boundElement{key: key, selector: selector, recorder: recorder})
			placeholders[key] = append(placeholders[key], recorder)
		}
	}
	return elements, placeholders
}

type streamObserver struct {
	writer io.Writer
}

func (o *streamObserver) PlaceholderResolved(key string, fragment string) {
	fmt.Fprintf(o.writer, "resolved %q (%d bytes)\n", key, len(fragment))
}
