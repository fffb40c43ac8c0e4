package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/schema"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/models"
)

// nodeService is the generic CRUD engine. It carries no per-type code: every
// operation looks the node type up in the registry and lets the declared
// schema drive validation, transformation, and slug handling.
type nodeService struct {
	nodeRepository store.NodeRepository
	registry       *registry.Registry
	validator      *schema.Validator
	logger         *logger.Logger
}

// NewNodeService constructs a NodeService over the given repository and type
// registry.
func NewNodeService(nodeRepository store.NodeRepository, reg *registry.Registry, logger *logger.Logger) NodeService {
	return &nodeService{
		nodeRepository: nodeRepository,
		registry:       reg,
		validator:      schema.NewValidator(reg),
		logger:         logger,
	}
}

// List returns one page of nodes of the given type, newest first, with the
// optional substring search applied to the type's title field. Field values
// pass through the display transform before leaving the service.
func (s *nodeService) List(ctx context.Context, typeName string, params store.ListParams) (models.NodeList, error) {
	nt, ok := s.registry.NodeType(typeName)
	if !ok {
		return models.NodeList{}, fmt.Errorf("%w: %q", ErrTypeNotRegistered, typeName)
	}

	params.TitleField = nt.Settings.TitleField
	if params.TitleField == "" {
		params.TitleField = "title"
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = store.DefaultPageLimit
	}

	nodes, total, err := s.nodeRepository.ListNodes(ctx, typeName, params)
	if err != nil {
		return models.NodeList{}, fmt.Errorf("listing nodes of type %q: %w", typeName, err)
	}

	for i := range nodes {
		nodes[i].Data = schema.ToDisplay(ctx, nt.Fields, nodes[i].Data)
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	return models.NodeList{
		Nodes: nodes,
		Pagination: models.Pagination{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// Get fetches one node by numeric ID or, when idOrSlug is not numeric, by
// slug. Field values pass through the display transform.
func (s *nodeService) Get(ctx context.Context, typeName, idOrSlug string) (models.Node, error) {
	nt, ok := s.registry.NodeType(typeName)
	if !ok {
		return models.Node{}, fmt.Errorf("%w: %q", ErrTypeNotRegistered, typeName)
	}

	var node models.Node
	var err error
	if id, parseErr := strconv.ParseInt(idOrSlug, 10, 64); parseErr == nil {
		node, err = s.nodeRepository.GetNodeByID(ctx, typeName, id)
	} else {
		node, err = s.nodeRepository.GetNodeBySlug(ctx, typeName, idOrSlug)
	}
	if err != nil {
		return models.Node{}, fmt.Errorf("fetching node of type %q: %w", typeName, err)
	}

	node.Data = schema.ToDisplay(ctx, nt.Fields, node.Data)
	return node, nil
}

// Create validates input against the type's declared fields, runs the storage
// transform (save hooks, block ID backfill, undeclared-key stripping),
// extracts the slug column value, and persists a new node stamped with the
// acting user.
//
// Returns a *ValidationError listing every violation when validation fails;
// no partial write happens in that case.
func (s *nodeService) Create(ctx context.Context, typeName string, input schema.Values, authorID int64) (models.Node, error) {
	log := logger.FromContext(ctx)

	nt, ok := s.registry.NodeType(typeName)
	if !ok {
		return models.Node{}, fmt.Errorf("%w: %q", ErrTypeNotRegistered, typeName)
	}

	if violations := s.validator.Validate(ctx, nt.Fields, input); len(violations) > 0 {
		return models.Node{}, NewValidationError(violations)
	}

	stored, err := schema.ToStorage(ctx, nt.Fields, input, nil, s.registry)
	if err != nil {
		log.Err(err).Str("nodeType", typeName).Msg("storage transform failed")
		return models.Node{}, fmt.Errorf("transforming node of type %q: %w", typeName, err)
	}

	node := models.Node{
		Type:     typeName,
		Slug:     s.slugValue(typeName, stored),
		AuthorID: &authorID,
		Data:     stored,
	}

	created, err := s.nodeRepository.CreateNode(ctx, node)
	if err != nil {
		log.Err(err).Str("nodeType", typeName).Msg("node creation ended with error")
		return models.Node{}, fmt.Errorf("creating node of type %q: %w", typeName, err)
	}

	created.Data = schema.ToDisplay(ctx, nt.Fields, created.Data)
	return created, nil
}

// Update applies a partial update to an existing node. The incoming values
// are merged over the persisted ones before validation, so a request that
// omits a required field it does not touch still passes. Save hooks see the
// persisted snapshot as their owner argument.
func (s *nodeService) Update(ctx context.Context, typeName string, id int64, input schema.Values) (models.Node, error) {
	log := logger.FromContext(ctx)

	nt, ok := s.registry.NodeType(typeName)
	if !ok {
		return models.Node{}, fmt.Errorf("%w: %q", ErrTypeNotRegistered, typeName)
	}

	existing, err := s.nodeRepository.GetNodeByID(ctx, typeName, id)
	if err != nil {
		return models.Node{}, fmt.Errorf("fetching node of type %q: %w", typeName, err)
	}

	merged := schema.Values(existing.Data).Clone()
	for k, v := range input {
		merged[k] = v
	}

	if violations := s.validator.Validate(ctx, nt.Fields, merged); len(violations) > 0 {
		return models.Node{}, NewValidationError(violations)
	}

	stored, err := schema.ToStorage(ctx, nt.Fields, merged, existing.Data, s.registry)
	if err != nil {
		log.Err(err).Str("nodeType", typeName).Int64("id", id).Msg("storage transform failed")
		return models.Node{}, fmt.Errorf("transforming node of type %q: %w", typeName, err)
	}

	existing.Slug = s.slugValue(typeName, stored)
	existing.Data = stored

	updated, err := s.nodeRepository.UpdateNode(ctx, existing)
	if err != nil {
		log.Err(err).Str("nodeType", typeName).Int64("id", id).Msg("node update ended with error")
		return models.Node{}, fmt.Errorf("updating node of type %q: %w", typeName, err)
	}

	updated.Data = schema.ToDisplay(ctx, nt.Fields, updated.Data)
	return updated, nil
}

// Delete removes one node by numeric ID.
func (s *nodeService) Delete(ctx context.Context, typeName string, id int64) error {
	if !s.registry.HasNodeType(typeName) {
		return fmt.Errorf("%w: %q", ErrTypeNotRegistered, typeName)
	}

	if err := s.nodeRepository.DeleteNode(ctx, typeName, id); err != nil {
		return fmt.Errorf("deleting node of type %q: %w", typeName, err)
	}
	return nil
}

// slugValue extracts the slug column value from transformed data, or the
// empty string for types without a slug field.
func (s *nodeService) slugValue(typeName string, stored schema.Values) string {
	slugField, ok := s.registry.SlugField(typeName)
	if !ok {
		return ""
	}
	slug, _ := stored[slugField.Name].(string)
	return slug
}
