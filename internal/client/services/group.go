package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/models"
)

const groupsPath = "/api/groups/v1"

type GroupService interface {
	List(ctx context.Context) (models.GroupList, error)
	Create(ctx context.Context, name string) (models.Group, error)
	Rename(ctx context.Context, id, name string) (models.Group, error)
	Reorder(ctx context.Context, order []models.GroupOrder) ([]models.Group, error)
	Delete(ctx context.Context, id string) error
}

type groupService struct {
	api client.Requester
}

func NewGroupService(api client.Requester) GroupService {
	return &groupService{api: api}
}

func (g *groupService) List(ctx context.Context) (models.GroupList, error) {
	list, err := client.Get[models.GroupList](ctx, g.api, groupsPath, nil)
	if err != nil {
		return models.GroupList{}, fmt.Errorf("list groups error: %w", err)
	}
	return list, nil
}

func (g *groupService) Create(ctx context.Context, name string) (models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Group{}, invalid("group name is required")
	}

	grp, err := client.Post[models.Group](ctx, g.api, groupsPath, models.GroupNameRequest{Name: name}, nil)
	if err != nil {
		return models.Group{}, fmt.Errorf("create group error: %w", err)
	}
	return grp, nil
}

func (g *groupService) Rename(ctx context.Context, id, name string) (models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Group{}, invalid("group name is required")
	}

	grp, err := client.Post[models.Group](ctx, g.api, groupsPath+"/"+url.PathEscape(id)+"/rename",
		models.GroupNameRequest{Name: name}, nil)
	if err != nil {
		return models.Group{}, fmt.Errorf("rename group error: %w", err)
	}
	return grp, nil
}

func (g *groupService) Reorder(ctx context.Context, order []models.GroupOrder) ([]models.Group, error) {
	groups, err := client.Post[[]models.Group](ctx, g.api, groupsPath+"/reorder",
		models.ReorderGroupsRequest{Groups: order}, nil)
	if err != nil {
		return nil, fmt.Errorf("reorder groups error: %w", err)
	}
	return groups, nil
}

func (g *groupService) Delete(ctx context.Context, id string) error {
	if err := g.api.Do(ctx, http.MethodPost, groupsPath+"/"+url.PathEscape(id)+"/delete", nil, nil, nil); err != nil {
		return fmt.Errorf("delete group error: %w", err)
	}
	return nil
}
