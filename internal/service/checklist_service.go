package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"connectrpc.com/connect"

	"github.com/mmynk/tripboard/internal/checklist"
	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/tripdata"
	"github.com/mmynk/tripboard/pkg/api"
	"github.com/mmynk/tripboard/pkg/api/apiconnect"
)

// ChecklistService implements the Connect ChecklistService
type ChecklistService struct {
	apiconnect.UnimplementedChecklistServiceHandler
	checklist *checklist.Checklist
}

// NewChecklistService creates a new ChecklistService.
func NewChecklistService(c *checklist.Checklist) *ChecklistService {
	return &ChecklistService{checklist: c}
}

// GetChecklist returns every category with its saved progress.
func (s *ChecklistService) GetChecklist(ctx context.Context, req *connect.Request[api.GetChecklistRequest]) (*connect.Response[api.GetChecklistResponse], error) {
	lang := tripdata.ParseLang(req.Msg.Lang)
	slog.Info("GetChecklist request received", "lang", lang)

	trip, err := tripdata.Load(lang)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	views := make([]api.ChecklistView, 0, len(trip.Checklist))
	for _, category := range trip.Checklist {
		checked, err := s.checklist.Load(ctx, category.ID)
		if err != nil {
			slog.Error("GetChecklist failed", "category", category.ID, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		done, total := checklist.Progress(category, checked)
		views = append(views, api.ChecklistView{
			Category: category,
			Checked:  checked,
			Done:     done,
			Total:    total,
		})
	}

	return connect.NewResponse(&api.GetChecklistResponse{Categories: views}), nil
}

// ToggleItem flips one item. Category and item must exist in the built-in
// checklist; IDs are the same in every language.
func (s *ChecklistService) ToggleItem(ctx context.Context, req *connect.Request[api.ToggleItemRequest]) (*connect.Response[api.ToggleItemResponse], error) {
	slog.Info("ToggleItem request received", "category", req.Msg.Category, "item", req.Msg.Item)

	trip, err := tripdata.Load(tripdata.LangZH)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	category, ok := trip.Category(req.Msg.Category)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("unknown checklist category %q", req.Msg.Category))
	}
	if !slices.ContainsFunc(category.Items, func(it models.ChecklistItem) bool { return it.ID == req.Msg.Item }) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("unknown item %q in checklist %q", req.Msg.Item, category.ID))
	}

	value, err := s.checklist.Toggle(ctx, category.ID, req.Msg.Item)
	if err != nil {
		slog.Error("ToggleItem failed", "category", category.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	checked, err := s.checklist.Load(ctx, category.ID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	done, total := checklist.Progress(category, checked)

	return connect.NewResponse(&api.ToggleItemResponse{
		Checked: value,
		Done:    done,
		Total:   total,
	}), nil
}
