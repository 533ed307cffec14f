package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/prompt"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type ModelGatewayInterface interface {
	AnalyzeBid(ctx context.Context, bidText string) (*model.BidAnalysis, error)
	FindTenders(ctx context.Context, keywords string) ([]model.MonitoredTender, error)
	GenerateChecklist(ctx context.Context, tenderType string) (model.Checklist, error)
	TranslateJSON(ctx context.Context, raw []byte, targetLanguage string) ([]byte, error)
}

// ModelGateway turns each operation into one structured-generation call.
// It issues exactly one request per call and never retries.
type ModelGateway struct {
	gen StructuredGenerator
	log *zap.Logger
}

func NewModelGateway(gen StructuredGenerator, log *zap.Logger) *ModelGateway {
	return &ModelGateway{gen: gen, log: log}
}

func (g *ModelGateway) AnalyzeBid(ctx context.Context, bidText string) (*model.BidAnalysis, error) {
	if strings.TrimSpace(bidText) == "" {
		return nil, fmt.Errorf("bid text: %w", ErrEmptyInput)
	}
	schema := prompt.BidAnalysisSchema()
	text, err := g.gen.GenerateStructured(ctx, GenerateRequest{
		Prompt:            bidText,
		SystemInstruction: prompt.BidAnalysisInstruction,
		Schema:            schema,
	})
	if err != nil {
		return nil, err
	}
	text = stripCodeFence(text)

	if !gjson.Valid(text) {
		return nil, &ParseError{Message: "reply is not valid JSON", Fragment: fragment(text)}
	}
	root := gjson.Parse(text)
	if !root.IsObject() {
		return nil, &ParseError{Message: "expected a JSON object", Fragment: fragment(text)}
	}
	for _, key := range prompt.TopLevelKeys(schema) {
		if !root.Get(key).Exists() {
			return nil, &ParseError{Message: fmt.Sprintf("missing field %q", key), Fragment: fragment(text)}
		}
	}

	var analysis model.BidAnalysis
	if err := decodeReply(text, &analysis); err != nil {
		return nil, err
	}
	if err := analysis.Validate(); err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}
	g.log.Info("bid analyzed",
		zap.String("project", analysis.Summary.ProjectName),
		zap.Int("score", int(analysis.Relevance.RelevanceScore)),
	)
	return &analysis, nil
}

func (g *ModelGateway) FindTenders(ctx context.Context, keywords string) ([]model.MonitoredTender, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, fmt.Errorf("keywords: %w", ErrEmptyInput)
	}
	var tenders []model.MonitoredTender
	if err := g.generateList(ctx, GenerateRequest{
		Prompt:            prompt.TenderSearch(keywords),
		SystemInstruction: prompt.TenderMonitorInstruction,
		Schema:            prompt.TenderListSchema(),
	}, &tenders); err != nil {
		return nil, err
	}
	g.log.Info("tenders found", zap.Int("count", len(tenders)))
	return tenders, nil
}

func (g *ModelGateway) GenerateChecklist(ctx context.Context, tenderType string) (model.Checklist, error) {
	if strings.TrimSpace(tenderType) == "" {
		return nil, fmt.Errorf("tender type: %w", ErrEmptyInput)
	}
	var checklist model.Checklist
	if err := g.generateList(ctx, GenerateRequest{
		Prompt:            prompt.ChecklistRequest(tenderType),
		SystemInstruction: prompt.ChecklistInstruction,
		Schema:            prompt.ChecklistSchema(),
	}, &checklist); err != nil {
		return nil, err
	}
	g.log.Info("checklist generated", zap.String("tender_type", tenderType), zap.Int("sections", len(checklist)))
	return checklist, nil
}

// generateList expects a JSON array whose elements are all objects.
func (g *ModelGateway) generateList(ctx context.Context, req GenerateRequest, out any) error {
	text, err := g.gen.GenerateStructured(ctx, req)
	if err != nil {
		return err
	}
	text = stripCodeFence(text)
	if !gjson.Valid(text) {
		return &ParseError{Message: "reply is not valid JSON", Fragment: fragment(text)}
	}
	root := gjson.Parse(text)
	if !root.IsArray() {
		return &ParseError{Message: "expected a JSON array", Fragment: fragment(text)}
	}
	for i, el := range root.Array() {
		if !el.IsObject() {
			return &ParseError{Message: fmt.Sprintf("element %d is not an object", i), Fragment: fragment(text)}
		}
	}
	return decodeReply(text, out)
}

// TranslateJSON translates leaf strings of a JSON document and checks that the
// reply keeps the input's keys and array lengths.
func (g *ModelGateway) TranslateJSON(ctx context.Context, raw []byte, targetLanguage string) ([]byte, error) {
	p, err := prompt.Translation(raw, targetLanguage)
	if err != nil {
		return nil, err
	}
	text, err := g.gen.GenerateStructured(ctx, GenerateRequest{Prompt: p})
	if err != nil {
		return nil, err
	}
	text = stripCodeFence(text)

	var source, translated any
	if err := json.Unmarshal(raw, &source); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(text), &translated); err != nil {
		return nil, &ParseError{Message: "translation reply is not valid JSON", Fragment: fragment(text), Err: err}
	}
	if err := sameShape(source, translated, ""); err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("translation changed the document structure: %v", err), Err: err}
	}
	g.log.Info("object translated", zap.String("language", targetLanguage), zap.Int("bytes", len(text)))
	return []byte(text), nil
}

// TranslateObject round-trips obj through TranslateJSON and decodes the result into the same type.
func TranslateObject[T any](ctx context.Context, gw ModelGatewayInterface, obj T, targetLanguage string) (T, error) {
	var zero T
	raw, err := json.Marshal(obj)
	if err != nil {
		return zero, fmt.Errorf("encode translation input: %w", err)
	}
	out, err := gw.TranslateJSON(ctx, raw, targetLanguage)
	if err != nil {
		return zero, err
	}
	var translated T
	if err := json.Unmarshal(out, &translated); err != nil {
		return zero, &ParseError{Message: err.Error(), Fragment: fragment(string(out)), Err: err}
	}
	return translated, nil
}
