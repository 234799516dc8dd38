package cli

import (
	"context"
	"fmt"
)

func (a *App) Groups(ctx context.Context) error {
	list, err := a.groupService.List(ctx)
	if err != nil {
		return err
	}

	for _, g := range list.DefaultGroups {
		fmt.Fprintf(a.out, "  %-12s %-20s %d\n", g.ID, g.Name, g.CardBookCount)
	}
	for _, g := range list.CustomGroups {
		fmt.Fprintf(a.out, "%d %-12s %-20s %d\n", g.SortOrder, g.ID, g.Name, g.CardBookCount)
	}
	return nil
}

func (a *App) GroupAdd(ctx context.Context, name string) error {
	g, err := a.groupService.Create(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Group %s created (%s)\n", g.Name, g.ID)
	return nil
}

func (a *App) GroupRename(ctx context.Context, id, name string) error {
	g, err := a.groupService.Rename(ctx, id, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Group %s renamed to %s\n", g.ID, g.Name)
	return nil
}

func (a *App) GroupDelete(ctx context.Context, id string) error {
	if err := a.groupService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Group deleted")
	return nil
}
