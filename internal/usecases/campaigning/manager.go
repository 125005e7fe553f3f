package campaigning

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz"
	flowbizdomain "github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/domain"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/flowbiz/flowbizclient"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Campos da requisição de gerenciamento
const (
	fieldAction        = "action"
	fieldFieldMappings = "FieldMappings"
	fieldListName      = "ListName"
	fieldRecordsFrom   = "RecordsFrom"
	fieldFromEmail     = "FromEmail"
	fieldSubject       = "Subject"
	fieldWarnings      = "Warnings"
	unknownErrorText   = "Desconhecido"
	actionList         = "list"
	actionCreate       = "create"
)

// Colunas já existentes em toda lista do Flowbiz
var reservedFieldNames = map[string]bool{
	"email": true,
	"name":  true,
	"nome":  true,
}

type Manager interface {
	Manage(ctx context.Context, data map[string]any) (*ManageResult, error)
	Clone(ctx context.Context, req CloneRequest) (*ManageResult, error)
}

// ManageResult é o status e o corpo devolvidos ao cliente
type ManageResult struct {
	StatusCode int
	Body       any
	Warnings   []string
}

// CreateRequest é a criação orquestrada: lista, campos, segmento e campanha
type CreateRequest struct {
	CampaignName  string            `mapstructure:"CampaignName"`
	Subject       string            `mapstructure:"Subject"`
	ListName      string            `mapstructure:"ListName"`
	SegmentName   string            `mapstructure:"SegmentName"`
	FromEmail     string            `mapstructure:"FromEmail"`
	FieldMappings map[string]string `mapstructure:"FieldMappings"`
	CustomFields  []string          `mapstructure:"CustomFields"`
}

// CloneRequest cria uma campanha a partir de outra existente
type CloneRequest struct {
	CloneCampaignID any    `mapstructure:"CloneCampaignID"`
	CampaignName    string `mapstructure:"CampaignName"`
	Subject         string `mapstructure:"Subject"`
	ListID          any    `mapstructure:"ListID"`
	FromEmail       string `mapstructure:"FromEmail"`
}

type CampaignManager struct {
	cfg        *config.Config
	integrator flowbiz.FlowbizIntegrator
	aggregator Aggregator
	enricher   Enricher
}

func NewManager(cfg *config.Config, integrator flowbiz.FlowbizIntegrator, aggregator Aggregator, enricher Enricher) *CampaignManager {
	return &CampaignManager{
		cfg:        cfg,
		integrator: integrator,
		aggregator: aggregator,
		enricher:   enricher,
	}
}

// DecodeCreateRequest converte o corpo JSON aceitando números onde se espera texto
func DecodeCreateRequest(data map[string]any) (CreateRequest, error) {
	var req CreateRequest
	if err := weakDecode(data, &req); err != nil {
		return req, err
	}

	req.CampaignName = strings.TrimSpace(req.CampaignName)
	req.Subject = strings.TrimSpace(req.Subject)
	req.ListName = strings.TrimSpace(req.ListName)
	req.SegmentName = strings.TrimSpace(req.SegmentName)
	req.FromEmail = strings.TrimSpace(req.FromEmail)

	return req, nil
}

func DecodeCloneRequest(data map[string]any) (CloneRequest, error) {
	var req CloneRequest
	if err := weakDecode(data, &req); err != nil {
		return req, err
	}

	req.CampaignName = strings.TrimSpace(req.CampaignName)
	req.Subject = strings.TrimSpace(req.Subject)
	req.FromEmail = strings.TrimSpace(req.FromEmail)

	return req, nil
}

func weakDecode(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(data); err != nil {
		return NewCampaignError(ErrInvalidCampaignFields, apiErrors.ErrInvalidFormat, err.Error())
	}
	return nil
}

// Manage despacha pela ação. Em "create", FieldMappings ou ListName disparam a
// criação orquestrada; o resto passa pela lista de ações permitidas.
func (m *CampaignManager) Manage(ctx context.Context, data map[string]any) (*ManageResult, error) {
	if data == nil {
		data = map[string]any{}
	}

	action := normalizeAction(data[fieldAction])
	delete(data, fieldAction)

	_, hasMappings := data[fieldFieldMappings]
	_, hasListName := data[fieldListName]
	if action == actionCreate && (hasMappings || hasListName) {
		req, err := DecodeCreateRequest(data)
		if err != nil {
			return nil, err
		}
		return m.CreateOrchestrated(ctx, req)
	}

	command, allowed := flowbizdomain.CampaignActions[action]
	if !allowed {
		return nil, NewCampaignErrorWithData(ErrInvalidAction, apiErrors.ErrInvalidAction, "", map[string]any{
			"allowed": flowbizdomain.SortedKeys(flowbizdomain.CampaignActions),
		})
	}

	if action == actionList {
		return m.list(ctx, data)
	}

	apiKey, err := m.apiKey()
	if err != nil {
		return nil, err
	}

	resp, err := m.integrator.Call(ctx, apiKey, command, data)
	if err != nil {
		return nil, transportError(err)
	}

	return &ManageResult{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}

// normalizeAction aceita "Archive_URL" como "archive-url"
func normalizeAction(value any) string {
	if value == nil {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(fmt.Sprint(value))), "_", "-")
}

// list devolve a página agregada de todas as contas já enriquecida
func (m *CampaignManager) list(ctx context.Context, data map[string]any) (*ManageResult, error) {
	pageSize, err := intParam(data, flowbizdomain.FieldRecordsPerRequest, domain.DefaultPageSize)
	if err != nil {
		return nil, err
	}

	offset, err := intParam(data, fieldRecordsFrom, domain.DefaultOffset)
	if err != nil {
		return nil, err
	}

	query := domain.CampaignListQuery{
		PageSize:   pageSize,
		Offset:     offset,
		Status:     data[flowbizdomain.FieldCampaignStatus],
		OrderField: domain.DefaultOrderField,
		OrderType:  domain.DefaultOrderType,
	}

	page, err := m.aggregator.ListCampaigns(ctx, query)
	if err != nil {
		return nil, err
	}

	for i, campaign := range page.Campaigns {
		page.Campaigns[i] = m.enricher.Enrich(ctx, campaign)
	}

	logrus.WithFields(logrus.Fields{
		"page_size": pageSize,
		"offset":    offset,
		"total":     page.TotalCampaigns,
		"returned":  len(page.Campaigns),
	}).Info("Listagem agregada de campanhas")

	return &ManageResult{
		StatusCode: http.StatusOK,
		Body:       page,
	}, nil
}

func intParam(data map[string]any, field string, fallback int) (int, error) {
	value, ok := data[field]
	if !ok || value == nil {
		return fallback, nil
	}

	parsed, err := utils.ToInt(value)
	if err != nil {
		return 0, NewCampaignError(ErrInvalidPagination, apiErrors.ErrInvalidFormat, fmt.Sprintf("%s: %v", field, value))
	}
	return parsed, nil
}

// CreateOrchestrated cria lista, campos personalizados e segmento antes da campanha.
// Só a lista e a campanha podem interromper o fluxo; falhas nas etapas
// intermediárias viram avisos.
func (m *CampaignManager) CreateOrchestrated(ctx context.Context, req CreateRequest) (*ManageResult, error) {
	if req.CampaignName == "" || req.Subject == "" {
		return nil, NewCampaignError(ErrCreateFieldsRequired, apiErrors.ErrMissingRequiredData, "")
	}

	apiKey, err := m.apiKey()
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"campaign_name": req.CampaignName,
		"list_name":     req.ListName,
	})

	var listID any
	if req.ListName != "" {
		resp, err := m.integrator.CreateList(ctx, apiKey, req.ListName)
		if err != nil {
			return nil, transportError(err)
		}

		body, _ := resp.Object()
		result := flowbizdomain.Result(body)
		id, hasID := result.ListID()
		if !result.Success() && !hasID {
			logger.WithField("status", resp.StatusCode).Warn("Flowbiz recusou a criação da lista")
			return nil, NewCampaignError(ErrListCreation, apiErrors.ErrUpstreamApplication, result.ErrorText(unknownErrorText))
		}
		listID = id
		logger.WithField("list_id", listID).Info("Lista criada")
	}

	var warnings []string

	if utils.IsTruthy(listID) {
		for _, fieldName := range customFieldNames(req) {
			resp, err := m.integrator.CreateCustomField(ctx, apiKey, listID, fieldName)
			if failure := stepFailure(resp, err); failure != "" {
				warnings = append(warnings, fmt.Sprintf("Falha ao criar campo personalizado %s: %s", fieldName, failure))
				logger.WithFields(logrus.Fields{
					"field":   fieldName,
					"failure": failure,
				}).Warn("Falha ao criar campo personalizado")
			}
		}
	}

	var segmentID any
	if req.SegmentName != "" && utils.IsTruthy(listID) {
		resp, err := m.integrator.CreateSegment(ctx, apiKey, listID, req.SegmentName)
		if failure := stepFailure(resp, err); failure != "" {
			warnings = append(warnings, fmt.Sprintf("Falha ao criar segmento %s: %s", req.SegmentName, failure))
			logger.WithField("failure", failure).Warn("Falha ao criar segmento")
		} else {
			body, _ := resp.Object()
			segmentID, _ = flowbizdomain.Result(body).SegmentID()
		}
	}

	params := map[string]any{
		domain.CampaignName: req.CampaignName,
		fieldSubject:        req.Subject,
	}
	if utils.IsTruthy(listID) {
		params[flowbizdomain.FieldListID] = listID
	}
	if utils.IsTruthy(segmentID) {
		params[flowbizdomain.FieldSegmentID] = segmentID
	}
	if req.FromEmail != "" {
		params[fieldFromEmail] = req.FromEmail
	}

	resp, err := m.integrator.CreateCampaign(ctx, apiKey, params)
	if err != nil {
		return nil, transportError(err)
	}

	logger.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"warnings": len(warnings),
	}).Info("Criação orquestrada de campanha concluída")

	return &ManageResult{
		StatusCode: resp.StatusCode,
		Body:       withWarnings(resp.Body, warnings),
		Warnings:   warnings,
	}, nil
}

// customFieldNames junta os campos mapeados, sem as colunas padrão, e os
// campos avulsos. Os mapeamentos seguem a ordem das colunas de origem.
func customFieldNames(req CreateRequest) []string {
	columns := make([]string, 0, len(req.FieldMappings))
	for column := range req.FieldMappings {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	names := make([]string, 0, len(columns)+len(req.CustomFields))
	for _, column := range columns {
		mapped := strings.TrimSpace(req.FieldMappings[column])
		if mapped == "" || reservedFieldNames[strings.ToLower(mapped)] {
			continue
		}
		names = append(names, mapped)
	}

	for _, field := range req.CustomFields {
		if field = strings.TrimSpace(field); field != "" {
			names = append(names, field)
		}
	}

	return names
}

// stepFailure descreve a falha de uma etapa opcional, vazio quando deu certo
func stepFailure(resp *flowbizclient.Response, err error) string {
	if err != nil {
		return err.Error()
	}
	if !resp.IsSuccessStatus() {
		return fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	if body, ok := resp.Object(); ok {
		result := flowbizdomain.Result(body)
		if _, hasSuccess := result[flowbizdomain.FieldSuccess]; hasSuccess && !result.Success() {
			return result.ErrorText(unknownErrorText)
		}
	}
	return ""
}

func withWarnings(body any, warnings []string) any {
	if len(warnings) == 0 {
		return body
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return body
	}
	obj[fieldWarnings] = warnings
	return obj
}

// Clone copia assunto, lista e remetente da campanha de origem quando não informados
func (m *CampaignManager) Clone(ctx context.Context, req CloneRequest) (*ManageResult, error) {
	if !utils.IsTruthy(req.CloneCampaignID) || req.CampaignName == "" {
		return nil, NewCampaignError(ErrCloneFieldsRequired, apiErrors.ErrMissingRequiredData, "")
	}

	apiKey, err := m.apiKey()
	if err != nil {
		return nil, err
	}

	resp, err := m.integrator.GetCampaign(ctx, apiKey, req.CloneCampaignID)
	if err != nil {
		return nil, transportError(err)
	}

	source, _ := resp.Object()

	params := map[string]any{
		domain.CampaignName: req.CampaignName,
	}

	if req.Subject != "" {
		params[fieldSubject] = req.Subject
	} else if subject := sourceValue(source, fieldSubject); utils.IsTruthy(subject) {
		params[fieldSubject] = subject
	}

	if utils.IsTruthy(req.ListID) {
		params[flowbizdomain.FieldListID] = req.ListID
	} else if listID := sourceValue(source, flowbizdomain.FieldListID); utils.IsTruthy(listID) {
		params[flowbizdomain.FieldListID] = listID
	}

	if req.FromEmail != "" {
		params[fieldFromEmail] = req.FromEmail
	} else if fromEmail := sourceValue(source, fieldFromEmail); utils.IsTruthy(fromEmail) {
		params[fieldFromEmail] = fromEmail
	}

	created, err := m.integrator.CreateCampaign(ctx, apiKey, params)
	if err != nil {
		return nil, transportError(err)
	}

	logrus.WithFields(logrus.Fields{
		"source_campaign": req.CloneCampaignID,
		"campaign_name":   req.CampaignName,
		"status":          created.StatusCode,
	}).Info("Campanha clonada")

	return &ManageResult{
		StatusCode: created.StatusCode,
		Body:       created.Body,
	}, nil
}

// sourceValue procura o campo no topo da resposta e depois no objeto Campaign
func sourceValue(source map[string]any, field string) any {
	if value, ok := source[field]; ok && utils.IsTruthy(value) {
		return value
	}
	if nested, ok := source[flowbizdomain.FieldCampaign].(map[string]any); ok {
		return nested[field]
	}
	return nil
}

func (m *CampaignManager) apiKey() (string, error) {
	apiKey, err := m.cfg.DefaultAPIKey()
	if err != nil {
		return "", NewCampaignError(err, apiErrors.ErrMissingConfiguration, "")
	}
	return apiKey, nil
}

func transportError(err error) error {
	var campaignErr *CampaignError
	if errors.As(err, &campaignErr) {
		return err
	}
	return NewCampaignError(ErrFlowbizRequest, apiErrors.ErrUpstreamTransport, err.Error())
}
