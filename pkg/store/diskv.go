package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/gridform/pkg/process"
)

// Load creates a local Persistence backed by diskv using the provided
// config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const (
	keyPrefix     = "processes"
	nameIndexFile = ".processes.json"
)

func (p *persistence) read(key string) (*process.Process, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	proc := &process.Process{}
	if err := json.Unmarshal(val, proc); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	proc.ID = pk.FileName
	return proc, nil
}

func (p *persistence) Save(_ context.Context, proc *process.Process) (*process.Process, error) {
	name := strings.TrimSpace(proc.Name)
	if name == "" {
		return nil, errors.New("store: process name required")
	}
	proc.Name = name

	index, err := p.loadNameIndex()
	if err != nil {
		return nil, fmt.Errorf("store: load name index: %w", err)
	}

	if proc.ID == "" {
		// Saving the same name again updates the existing record.
		if id, ok := index[name]; ok {
			proc.ID = id
		} else {
			proc.ID = uuid.NewString()
			proc.Active = true
		}
	}
	now := time.Now().UTC()
	if proc.CreatedAt.IsZero() {
		proc.CreatedAt = now
	}
	proc.UpdatedAt = now

	data, err := json.Marshal(proc)
	if err != nil {
		return nil, err
	}
	if err := p.d.Write(toKey(proc.ID), data); err != nil {
		return nil, fmt.Errorf("store: write process: %w", err)
	}

	index[name] = proc.ID
	if err := p.saveNameIndex(index); err != nil {
		return nil, fmt.Errorf("store: save name index: %w", err)
	}
	return proc, nil
}

func (p *persistence) Get(ctx context.Context, id, name string) (*process.Process, error) {
	if id == "" && name == "" {
		return nil, errors.New("store: provide an id or a name")
	}
	if id == "" {
		index, err := p.loadNameIndex()
		if err != nil {
			return nil, fmt.Errorf("store: load name index: %w", err)
		}
		if mapped, ok := index[strings.TrimSpace(name)]; ok {
			id = mapped
		} else if id = p.findByName(ctx, name); id == "" {
			return nil, ErrNotFound
		}
	}
	proc, err := p.read(toKey(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read process: %w", err)
	}
	return proc, nil
}

// findByName scans stored processes for a name the index does not know,
// which happens when records are dropped into the store out of band.
func (p *persistence) findByName(ctx context.Context, name string) string {
	name = strings.TrimSpace(name)
	for key := range p.d.KeysPrefix(keyPrefix+"/", ctx.Done()) {
		proc, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if proc.Name == name {
			return proc.ID
		}
	}
	return ""
}

func (p *persistence) List(ctx context.Context, opts ListOptions) ([]process.Summary, error) {
	all := make([]process.Summary, 0)
	for key := range p.d.KeysPrefix(keyPrefix+"/", ctx.Done()) {
		proc, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if opts.ActiveOnly && !proc.Active {
			continue
		}
		all = append(all, proc.Summarize())
	}
	sortSummaries(all)

	if opts.Skip > 0 {
		if opts.Skip >= len(all) {
			return []process.Summary{}, nil
		}
		all = all[opts.Skip:]
	}
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, nil
}

func (p *persistence) Search(ctx context.Context, term string) ([]process.Summary, error) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil, errors.New("store: search term required")
	}
	matches := make([]process.Summary, 0)
	for key := range p.d.KeysPrefix(keyPrefix+"/", ctx.Done()) {
		proc, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if !proc.Active {
			continue
		}
		if matchesProcess(proc, needle) {
			matches = append(matches, proc.Summarize())
		}
	}
	sortSummaries(matches)
	return matches, nil
}

func matchesProcess(proc *process.Process, needle string) bool {
	if strings.Contains(strings.ToLower(proc.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(proc.Description), needle) {
		return true
	}
	for _, item := range proc.Grid {
		if strings.Contains(strings.ToLower(item.GridName), needle) {
			return true
		}
	}
	return false
}

func (p *persistence) Delete(ctx context.Context, id string, hard bool) error {
	proc, err := p.Get(ctx, id, "")
	if err != nil {
		return err
	}
	if !hard {
		proc.Active = false
		proc.UpdatedAt = time.Now().UTC()
		data, err := json.Marshal(proc)
		if err != nil {
			return err
		}
		return p.d.Write(toKey(proc.ID), data)
	}

	if err := p.d.Erase(toKey(proc.ID)); err != nil {
		return fmt.Errorf("store: erase process: %w", err)
	}
	index, err := p.loadNameIndex()
	if err != nil {
		return fmt.Errorf("store: load name index: %w", err)
	}
	delete(index, proc.Name)
	if err := p.saveNameIndex(index); err != nil {
		return fmt.Errorf("store: save name index: %w", err)
	}
	return nil
}

func (p *persistence) nameIndexPath() string {
	return filepath.Join(p.basePath, nameIndexFile)
}

func (p *persistence) loadNameIndex() (map[string]string, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.nameIndexPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return make(map[string]string), nil
	}
	index := make(map[string]string)
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, err
	}
	return index, nil
}

func (p *persistence) saveNameIndex(index map[string]string) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	path := p.nameIndexPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func sortSummaries(all []process.Summary) {
	sort.SliceStable(all, func(i, j int) bool {
		left := all[i]
		right := all[j]
		if left.CreatedAt.Equal(right.CreatedAt) {
			return left.Name < right.Name
		}
		return left.CreatedAt.After(right.CreatedAt)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}

// toKey makes `processes/<id>`
func toKey(id string) string {
	return fmt.Sprintf("%s/%s", keyPrefix, id)
}
