package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/service"
	"github.com/fadilmartias/bid-analyzer/internal/toggle"
	"go.uber.org/zap"
)

var ErrSectionOutOfRange = errors.New("checklist section index out of range")

type ChecklistView struct {
	TenderType string          `json:"tenderType"`
	Checklist  model.Checklist `json:"checklist"`
	State      toggle.State    `json:"state"`
}

// ChecklistUsecase backs the checklist view. User notes live beside the
// toggle and are merged into whichever copy is displayed, so they are never
// sent for translation.
type ChecklistUsecase struct {
	gateway service.ModelGatewayInterface
	opts    Options
	log     *zap.Logger

	busy    busyFlag
	display toggle.Toggle[model.Checklist]

	mu         sync.Mutex
	tenderType string
	notes      []string
}

func NewChecklistUsecase(gateway service.ModelGatewayInterface, opts Options, log *zap.Logger) *ChecklistUsecase {
	return &ChecklistUsecase{gateway: gateway, opts: opts, log: log}
}

func (uc *ChecklistUsecase) TenderTypes() []string {
	return append([]string(nil), model.TenderTypes...)
}

func (uc *ChecklistUsecase) Generate(ctx context.Context, tenderType string) (*ChecklistView, error) {
	if strings.TrimSpace(tenderType) == "" {
		return nil, fmt.Errorf("tender type: %w", service.ErrEmptyInput)
	}
	release, err := uc.busy.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	uc.display.Clear()

	callCtx, cancel := withTimeout(ctx, uc.opts.Timeout)
	defer cancel()
	checklist, err := uc.gateway.GenerateChecklist(callCtx, tenderType)
	if err != nil {
		uc.log.Warn("checklist generation failed", zap.Error(err))
		return nil, err
	}

	uc.mu.Lock()
	uc.tenderType = tenderType
	uc.notes = make([]string, len(checklist))
	uc.mu.Unlock()
	uc.display.Reset(checklist.WithoutUserNotes())
	return uc.Current(), nil
}

// SetNote records a user note for the section at index.
func (uc *ChecklistUsecase) SetNote(index int, note string) (*ChecklistView, error) {
	uc.mu.Lock()
	if index < 0 || index >= len(uc.notes) {
		uc.mu.Unlock()
		return nil, ErrSectionOutOfRange
	}
	uc.notes[index] = note
	uc.mu.Unlock()
	return uc.Current(), nil
}

func (uc *ChecklistUsecase) Current() *ChecklistView {
	v, state, _ := uc.display.Current()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if v != nil {
		v = v.WithUserNotes(uc.notes)
	}
	return &ChecklistView{TenderType: uc.tenderType, Checklist: v, State: state}
}

// Translate toggles the checklist language. Only the note-free source is translated.
func (uc *ChecklistUsecase) Translate(ctx context.Context) (*ChecklistView, error) {
	release, err := uc.busy.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := withTimeout(ctx, uc.opts.Timeout)
	defer cancel()
	_, _, err = uc.display.Flip(callCtx, func(ctx context.Context, v model.Checklist) (model.Checklist, error) {
		translated, err := service.TranslateObject(ctx, uc.gateway, v.WithoutUserNotes(), uc.opts.TargetLanguage)
		if err != nil {
			return nil, err
		}
		return translated.WithoutUserNotes(), nil
	})
	if err != nil {
		uc.log.Warn("translation failed", zap.Error(err))
		return nil, err
	}
	return uc.Current(), nil
}
