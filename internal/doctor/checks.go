// Package doctor runs read-only checks over a kickoff installation.
package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/castlebay-dev/stackpilot/internal/catalog"
	"github.com/castlebay-dev/stackpilot/internal/config"
	"github.com/castlebay-dev/stackpilot/internal/messages"
)

// Status is the severity of one check result.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// String returns the display label for the status.
func (s Status) String() string {
	switch s {
	case StatusWarn:
		return messages.DoctorStatusWarn
	case StatusFail:
		return messages.DoctorStatusFail
	default:
		return messages.DoctorStatusOK
	}
}

// Result is one check outcome with an optional recommendation.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckStructure verifies that the required managed paths exist.
func CheckStructure(root string) []Result {
	paths := config.DefaultPaths(root)
	required := []string{paths.Dir, paths.StacksDir, filepath.Dir(paths.CommandPath)}

	var results []Result
	for _, p := range required {
		rel := relToRoot(root, p)
		info, err := os.Stat(p)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameStructure,
				Message:        fmt.Sprintf(messages.DoctorMissingRequiredPathFmt, rel),
				Recommendation: messages.DoctorMissingRequiredRecommend,
			})
			continue
		}
		if !info.IsDir() {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameStructure,
				Message:        fmt.Sprintf(messages.DoctorPathNotDirFmt, rel),
				Recommendation: messages.DoctorPathNotDirRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameStructure,
			Message:   fmt.Sprintf(messages.DoctorPathExistsFmt, rel),
		})
	}
	return results
}

// CheckSettings validates the settings file. When strict loading fails with
// a validation error the lenient load still runs so downstream checks can
// use the partial settings.
func CheckSettings(root string) ([]Result, *config.Config) {
	paths := config.DefaultPaths(root)
	cfg, err := config.Load(paths.ConfigPath)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSettings,
			Message:   messages.DoctorSettingsOK,
		}}, cfg
	}

	if errors.Is(err, config.ErrConfigValidation) {
		lenient, lenientErr := config.LoadLenient(paths.ConfigPath)
		if lenientErr == nil {
			return []Result{{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameSettings,
				Message:        fmt.Sprintf(messages.DoctorSettingsInvalidFmt, err),
				Recommendation: messages.DoctorSettingsInvalidRecommend,
			}}, lenient
		}
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameSettings,
		Message:        fmt.Sprintf(messages.DoctorSettingsLoadFailedFmt, err),
		Recommendation: messages.DoctorMissingRequiredRecommend,
	}}, nil
}

// CheckCatalog verifies that the catalog document parses.
func CheckCatalog(root string, cfg *config.Config) []Result {
	paths := config.DefaultPaths(root)
	catalogPath := filepath.Join(paths.Dir, "catalog.md")
	if cfg != nil && cfg.Catalog.Path != "" {
		catalogPath = paths.CatalogPath(cfg)
	}

	index, err := catalog.Load(catalogPath)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameCatalog,
			Message:        fmt.Sprintf(messages.DoctorCatalogInvalidFmt, err),
			Recommendation: messages.DoctorCatalogInvalidRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCatalog,
		Message:   fmt.Sprintf(messages.DoctorCatalogOKFmt, len(index.Stacks)),
	}}
}

// CheckRegistration verifies that the kickoff command is registered with the
// host. A missing registration is a warning, not a failure: install fixes it.
func CheckRegistration(cfg *config.Config, lookupEnv func(string) (string, bool)) []Result {
	target := config.HostTargetClaude
	if cfg != nil && cfg.Host.Target != "" {
		target = cfg.Host.Target
	}

	home, err := config.ResolveHome(lookupEnv)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRegistration,
			Message:        fmt.Sprintf(messages.DoctorHostUnresolvedFmt, err),
			Recommendation: messages.DoctorHostUnresolvedRecommend,
		}}
	}
	hostPath, err := config.HostCommandPath(home, target)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRegistration,
			Message:        fmt.Sprintf(messages.DoctorHostUnresolvedFmt, err),
			Recommendation: messages.UnsupportedTargetRemedy,
		}}
	}

	if _, err := os.Stat(hostPath); err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRegistration,
			Message:        fmt.Sprintf(messages.DoctorNotRegisteredFmt, hostPath),
			Recommendation: messages.DoctorNotRegisteredRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameRegistration,
		Message:   fmt.Sprintf(messages.DoctorRegisteredFmt, hostPath),
	}}
}

// Run executes every check against root.
func Run(root string, lookupEnv func(string) (string, bool)) []Result {
	results := CheckStructure(root)
	settingsResults, cfg := CheckSettings(root)
	results = append(results, settingsResults...)
	results = append(results, CheckCatalog(root, cfg)...)
	results = append(results, CheckRegistration(cfg, lookupEnv)...)
	return results
}

// AnyFailed reports whether any result is a failure.
func AnyFailed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}

func relToRoot(root string, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
