package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/geoinsight-service/internal/domain"
	"github.com/geoinsight-service/internal/domain/repository"
	"github.com/geoinsight-service/internal/pkg/utils"
)

// snapshot is one immutable registry state. Readers grab the current
// snapshot under RLock; Refresh swaps in a new one.
type snapshot struct {
	names   []string
	aliases map[string]string
}

// LocationRegistry holds the canonical location names the resolver matches
// against. Names come from the scene store's directories plus the alias
// targets; the set only changes through Refresh or Invalidate.
type LocationRegistry struct {
	source  repository.RegistrySource
	aliases map[string]string
	logger  *zap.Logger

	mu    sync.RWMutex
	snap  *snapshot
	stale bool
}

// NewLocationRegistry builds a registry over the given source. It starts
// stale; the first Names/LookupAlias call triggers a refresh.
func NewLocationRegistry(source repository.RegistrySource, aliases map[string]string, logger *zap.Logger) *LocationRegistry {
	if aliases == nil {
		aliases = domain.DefaultAliases
	}
	return &LocationRegistry{
		source:  source,
		aliases: aliases,
		logger:  logger,
		snap:    &snapshot{aliases: map[string]string{}},
		stale:   true,
	}
}

// Refresh rebuilds the snapshot from the source. Alias targets are merged
// into the name set without duplicates.
func (r *LocationRegistry) Refresh(ctx context.Context) error {
	slugs, err := r.source.ListLocationSlugs(ctx)
	if err != nil {
		r.logger.Error("Failed to refresh location registry", zap.Error(err))
		return err
	}

	seen := make(map[string]struct{}, len(slugs)+len(r.aliases))
	names := make([]string, 0, len(slugs)+len(r.aliases))
	for _, slug := range slugs {
		name := utils.Unslugify(slug)
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}

	aliases := make(map[string]string, len(r.aliases))
	for alias, target := range r.aliases {
		aliases[normalizeAlias(alias)] = target
		key := strings.ToLower(target)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, target)
	}
	sort.Strings(names)

	r.mu.Lock()
	r.snap = &snapshot{names: names, aliases: aliases}
	r.stale = false
	r.mu.Unlock()

	r.logger.Info("Location registry refreshed", zap.Int("names", len(names)))
	return nil
}

// Invalidate marks the snapshot stale; the next read refreshes it.
func (r *LocationRegistry) Invalidate() {
	r.mu.Lock()
	r.stale = true
	r.mu.Unlock()

	r.logger.Debug("Location registry invalidated")
}

// Names returns the canonical name list, refreshing first when stale. A
// failed refresh falls back to the previous snapshot.
func (r *LocationRegistry) Names(ctx context.Context) []string {
	return r.current(ctx).names
}

// LookupAlias maps an informal name to its canonical form. Matching is
// case-insensitive and ignores surrounding and repeated whitespace.
func (r *LocationRegistry) LookupAlias(ctx context.Context, text string) (string, bool) {
	target, ok := r.current(ctx).aliases[normalizeAlias(text)]
	return target, ok
}

// Entries lists the registry contents for the delivery layer.
func (r *LocationRegistry) Entries(ctx context.Context) []domain.RegistryEntry {
	snap := r.current(ctx)

	targets := make(map[string]struct{}, len(snap.aliases))
	for _, t := range snap.aliases {
		targets[strings.ToLower(t)] = struct{}{}
	}

	entries := make([]domain.RegistryEntry, 0, len(snap.names))
	for _, name := range snap.names {
		_, isTarget := targets[strings.ToLower(name)]
		entries = append(entries, domain.RegistryEntry{
			Name:          name,
			IsAliasTarget: isTarget,
		})
	}
	return entries
}

func (r *LocationRegistry) current(ctx context.Context) *snapshot {
	r.mu.RLock()
	snap, stale := r.snap, r.stale
	r.mu.RUnlock()

	if !stale {
		return snap
	}

	if err := r.Refresh(ctx); err != nil {
		return snap
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

func normalizeAlias(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
