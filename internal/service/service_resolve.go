package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/schema"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/models"
)

// resolveService maps public URL paths to node instances by walking node
// types in registration order. For each candidate type the path must fit the
// type's URL scheme (subpath prefix plus one trailing key, or a single bare
// key for subpath-less types); the key is then tried as a numeric ID first
// and as a slug second. Types without a slug field stay addressable by
// numeric ID. The first type that yields a node wins.
type resolveService struct {
	nodeRepository store.NodeRepository
	registry       *registry.Registry
	logger         *logger.Logger
}

// NewResolveService constructs a ResolveService over the given repository and
// type registry.
func NewResolveService(nodeRepository store.NodeRepository, reg *registry.Registry, logger *logger.Logger) ResolveService {
	return &resolveService{
		nodeRepository: nodeRepository,
		registry:       reg,
		logger:         logger,
	}
}

// Resolve finds the node a public path points at.
//
// Returns ErrEmptyPath for an empty segment list and ErrNoRouteMatched when
// no registered type produces a node for the path.
func (s *resolveService) Resolve(ctx context.Context, segments []string) (models.ResolvedNode, error) {
	log := logger.FromContext(ctx)

	if len(segments) == 0 {
		return models.ResolvedNode{}, ErrEmptyPath
	}

	key := segments[len(segments)-1]
	prefix := strings.Join(segments[:len(segments)-1], "/")

	for _, nt := range s.registry.NodeTypes() {
		if nt.Settings.Subpath != prefix {
			continue
		}
		_, hasSlug := s.registry.SlugField(nt.Name)

		node, err := s.lookup(ctx, nt.Name, key, hasSlug)
		if err != nil {
			if errors.Is(err, store.ErrNodeNotFound) {
				continue
			}
			log.Err(err).Str("nodeType", nt.Name).Str("key", key).Msg("path resolution lookup failed")
			return models.ResolvedNode{}, fmt.Errorf("resolving path: %w", err)
		}

		node.Data = schema.ToDisplay(ctx, nt.Fields, node.Data)
		return models.ResolvedNode{Node: node, NodeType: nt.Name}, nil
	}

	return models.ResolvedNode{}, ErrNoRouteMatched
}

// lookup tries the key as a numeric ID first, then as a slug. A numeric key
// that matches no ID may still be a slug that happens to look numeric. When
// the type declares no slug field only the ID lookup runs.
func (s *resolveService) lookup(ctx context.Context, typeName, key string, hasSlug bool) (models.Node, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		node, err := s.nodeRepository.GetNodeByID(ctx, typeName, id)
		if err == nil {
			return node, nil
		}
		if !errors.Is(err, store.ErrNodeNotFound) {
			return models.Node{}, err
		}
	}

	if !hasSlug {
		return models.Node{}, store.ErrNodeNotFound
	}
	return s.nodeRepository.GetNodeBySlug(ctx, typeName, key)
}

// NodeURL returns the public path of a node instance, built from its type's
// subpath and its slug value.
//
// Returns ErrNoURLForNode when the type declares no slug field or the
// instance has no slug value.
func (s *resolveService) NodeURL(ctx context.Context, typeName string, id int64) (string, error) {
	if !s.registry.HasNodeType(typeName) {
		return "", fmt.Errorf("%w: %q", ErrTypeNotRegistered, typeName)
	}

	node, err := s.nodeRepository.GetNodeByID(ctx, typeName, id)
	if err != nil {
		return "", fmt.Errorf("fetching node of type %q: %w", typeName, err)
	}

	url, ok := s.registry.GenerateURL(typeName, node.Data)
	if !ok {
		return "", ErrNoURLForNode
	}
	return url, nil
}
