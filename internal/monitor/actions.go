// ABOUTME: User-triggered side effects: resolving alerts and asking the backend to re-poll
// ABOUTME: Outcomes become transient notices; callers decide whether to re-fetch

package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mikrodash/mikrodash/internal/client"
	"github.com/mikrodash/mikrodash/internal/poll"
	"github.com/mikrodash/mikrodash/internal/view"
)

// Notice is a transient notification about an action.
type Notice struct {
	Text  string
	Level view.Level
}

func success(text string) Notice { return Notice{Text: text, Level: view.LevelOK} }
func failure(err error) Notice   { return Notice{Text: "Error: " + err.Error(), Level: view.LevelCritical} }

// actionError turns a transport error or a {success:false} body into an error.
func actionError(res *client.ActionResult, err error, fallback string) error {
	if err != nil {
		return err
	}
	if res == nil || !res.Success {
		if res != nil && res.Error != "" {
			return errors.New(res.Error)
		}
		return errors.New(fallback)
	}
	return nil
}

// ResolveAlert resolves one alert. On success the caller re-fetches alerts.
func ResolveAlert(ctx context.Context, api API, id client.ID) (Notice, error) {
	res, err := api.ResolveAlert(ctx, id)
	if err := actionError(res, err, "Failed to resolve alert"); err != nil {
		slog.Warn("Resolve alert failed", "alert_id", id, "error", err)
		return failure(err), err
	}
	slog.Info("Alert resolved", "alert_id", id)
	return success("Alert resolved successfully"), nil
}

// ResolveAllResult summarises a bulk resolve.
type ResolveAllResult struct {
	Resolved int
	Total    int
	Errors   []error
}

// Notice renders the outcome the way the alerts page reports it.
func (r ResolveAllResult) Notice() Notice {
	switch {
	case r.Total == 0:
		return Notice{Text: "No active alerts to resolve", Level: view.LevelInfo}
	case r.Resolved == r.Total:
		return success(fmt.Sprintf("Successfully resolved all %d alerts", r.Total))
	default:
		return Notice{Text: fmt.Sprintf("Resolved %d of %d alerts", r.Resolved, r.Total), Level: view.LevelWarning}
	}
}

// ResolveAll resolves every id concurrently and tolerates partial failure.
// The caller re-fetches alerts afterwards regardless of the outcome.
func ResolveAll(ctx context.Context, api API, ids []client.ID) ResolveAllResult {
	errs := make([]error, len(ids))
	tasks := make([]poll.Task, len(ids))
	for i, id := range ids {
		tasks[i] = func(ctx context.Context) {
			res, err := api.ResolveAlert(ctx, id)
			if err := actionError(res, err, "Failed to resolve alert"); err != nil {
				errs[i] = fmt.Errorf("alert %s: %w", id, err)
			}
		}
	}
	poll.Settle(ctx, tasks...)

	result := ResolveAllResult{Total: len(ids)}
	for _, err := range errs {
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.Resolved++
	}
	slog.Info("Resolve all finished", "resolved", result.Resolved, "total", result.Total)
	return result
}

// RefreshOutcome is the result of asking the backend to re-poll a device.
type RefreshOutcome struct {
	Notice Notice
	// Refetch reports whether the page should run a cycle now.
	Refetch bool
	// Failed lists collectors that did not refresh, sorted.
	Failed []string
	Err    error
}

// Refresh asks the backend to re-collect deviceID. A full success or a
// partial one (some collectors failed, no error text) asks for a re-fetch;
// a transport error, non-2xx status or an error body does not.
func Refresh(ctx context.Context, api API, deviceID string) RefreshOutcome {
	res, err := api.Refresh(ctx, deviceID)
	if err != nil {
		slog.Warn("Refresh failed", "device_id", deviceID, "error", err)
		return RefreshOutcome{Notice: failure(err), Err: err}
	}

	if res != nil && res.Success {
		slog.Info("Refresh completed", "device_id", deviceID)
		return RefreshOutcome{Notice: success("Data refreshed successfully"), Refetch: true}
	}

	if failed := failedCollectors(res); len(failed) > 0 {
		slog.Warn("Refresh partially failed", "device_id", deviceID, "failed", failed)
		return RefreshOutcome{
			Notice:  Notice{Text: "Refreshed with failures: " + strings.Join(failed, ", "), Level: view.LevelWarning},
			Refetch: true,
			Failed:  failed,
		}
	}

	err = actionError(res, nil, "Failed to refresh data")
	slog.Warn("Refresh rejected", "device_id", deviceID, "error", err)
	return RefreshOutcome{Notice: failure(err), Err: err}
}

// failedCollectors names the collectors of a partial refresh. A response
// carrying an error text is a failure, not a partial refresh.
func failedCollectors(res *client.ActionResult) []string {
	if res == nil || res.Error != "" {
		return nil
	}
	var failed []string
	for name, ok := range res.Results {
		if !ok {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed
}
