package sankhya

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	sankhyadomain "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/domain"
	"github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/sankhyaclient"
	"github.com/avmoura/sankhya-crm-api/internal/config"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	"github.com/avmoura/sankhya-crm-api/pkg/utils"
)

// Entidades do CRM e do núcleo do ERP consultadas via loadRecords.
const (
	entityLeads        = "AD_LEADS"
	entityActivities   = "AD_ADLEADSATIVIDADES"
	entityFunnels      = "AD_FUNIS"
	entityFunnelStages = "AD_FUNISESTAGIOS"
	entityLeadProducts = "AD_ADLEADSPRODUTOS"
	entityOrders       = "CabecalhoNota"
	entityProducts     = "Produto"
	entityClients      = "Parceiro"
)

// Integrator é a fachada tipada sobre o gateway Sankhya: uma operação por
// entidade da análise, mais a criação de pedidos de venda.
type Integrator interface {
	ListLeads(filter domain.AnalysisFilter, userID int, isAdmin bool) ([]domain.Record, error)
	ListActivities(filter domain.AnalysisFilter) ([]domain.Record, error)
	ListFunnels() ([]domain.Record, error)
	ListFunnelStages() ([]domain.Record, error)
	ListOrders(filter domain.AnalysisFilter) ([]domain.Record, error)
	ListOrdersBySalesperson(filter domain.AnalysisFilter, vendorCode int) ([]domain.Record, error)
	ListLeadProducts(leadIDs []string) ([]domain.Record, error)
	ListProducts() ([]domain.Record, error)
	ListClients() ([]domain.Record, error)
	CreateOrder(request *sankhyadomain.OrderRequest) (*domain.SalesOrderReceipt, error)
}

type SankhyaService struct {
	cfg    *config.Config
	client sankhyaclient.Client
}

func New(cfg *config.Config, client sankhyaclient.Client) Integrator {
	return &SankhyaService{
		cfg:    cfg,
		client: client,
	}
}

// ListLeads busca leads ativos criados no período. Usuários sem perfil de
// administrador enxergam apenas os próprios leads; as demais entidades não
// têm esse recorte (comportamento herdado do CRM, não uniformizado aqui).
func (s *SankhyaService) ListLeads(filter domain.AnalysisFilter, userID int, isAdmin bool) ([]domain.Record, error) {
	criteria := leadsCriteria(filter, userID, isAdmin)

	payload := newQuery(entityLeads, "S",
		"CODLEAD, NOME, DESCRICAO, VALOR, CODESTAGIO, DATA_VENCIMENTO, TIPO_TAG, COR_TAG, CODPARC, CODFUNIL, CODUSUARIO, ATIVO, DATA_CRIACAO, DATA_ATUALIZACAO, STATUS_LEAD, MOTIVO_PERDA, DATA_CONCLUSAO",
		criteria, "")

	return s.query(payload)
}

// ListActivities busca atividades ativas agendadas no período ou sem data:
// atividades não agendadas entram sempre.
func (s *SankhyaService) ListActivities(filter domain.AnalysisFilter) ([]domain.Record, error) {
	criteria := fmt.Sprintf(
		"ATIVO = 'S' AND (DATA_HORA BETWEEN '%s' AND '%s' OR DATA_HORA IS NULL)",
		utils.ToSankhyaDate(filter.StartDate),
		utils.ToSankhyaDate(filter.EndDate),
	)

	payload := newQuery(entityActivities, "S",
		"CODATIVIDADE, CODLEAD, TIPO, DESCRICAO, DATA_HORA, DATA_INICIO, DATA_FIM, CODUSUARIO, DADOS_COMPLEMENTARES, COR, ORDEM, ATIVO, STATUS",
		criteria, "")

	return s.query(payload)
}

func (s *SankhyaService) ListFunnels() ([]domain.Record, error) {
	payload := newQuery(entityFunnels, "S",
		"CODFUNIL, NOME, DESCRICAO, COR, ATIVO, DATA_CRIACAO, DATA_ATUALIZACAO",
		"ATIVO = 'S'", "")

	return s.query(payload)
}

func (s *SankhyaService) ListFunnelStages() ([]domain.Record, error) {
	payload := newQuery(entityFunnelStages, "S",
		"CODESTAGIO, CODFUNIL, NOME, ORDEM, COR, ATIVO",
		"ATIVO = 'S'", "")

	return s.query(payload)
}

// ListOrders busca cabeçalhos de pedido (TIPMOV = 'P') negociados no
// período, do mais recente para o mais antigo. O CabecalhoNota exige as
// datas envolvidas em TO_DATE, diferente das entidades do CRM.
func (s *SankhyaService) ListOrders(filter domain.AnalysisFilter) ([]domain.Record, error) {
	return s.ListOrdersBySalesperson(filter, 0)
}

// ListOrdersBySalesperson é a variante restrita a um vendedor. Um vendorCode
// zerado remove o recorte e devolve todos os pedidos do período.
func (s *SankhyaService) ListOrdersBySalesperson(filter domain.AnalysisFilter, vendorCode int) ([]domain.Record, error) {
	criteria := fmt.Sprintf(
		"TIPMOV = 'P' AND DTNEG BETWEEN TO_DATE('%s', 'DD/MM/YYYY') AND TO_DATE('%s', 'DD/MM/YYYY')",
		utils.ToSankhyaDate(filter.StartDate),
		utils.ToSankhyaDate(filter.EndDate),
	)

	if vendorCode > 0 {
		criteria += fmt.Sprintf(" AND CODVEND = %d", vendorCode)
	}

	payload := newQuery(entityOrders, "S",
		"NUNOTA, CODPARC, CODVEND, VLRNOTA, DTNEG",
		criteria, "DTNEG DESC, NUNOTA DESC")

	return s.query(payload)
}

// ListLeadProducts busca os produtos vinculados aos leads informados. O
// chamador garante a lista não vazia: sem essa garantia a cláusula IN ()
// seria inválida no Sankhya.
func (s *SankhyaService) ListLeadProducts(leadIDs []string) ([]domain.Record, error) {
	criteria := fmt.Sprintf("CODLEAD IN (%s) AND ATIVO = 'S'", strings.Join(leadIDs, ","))

	payload := newQuery(entityLeadProducts, "S",
		"CODITEM, CODLEAD, CODPROD, DESCRPROD, QUANTIDADE, VLRUNIT, VLRTOTAL, ATIVO, DATA_INCLUSAO",
		criteria, "")

	return s.query(payload)
}

func (s *SankhyaService) ListProducts() ([]domain.Record, error) {
	payload := newQuery(entityProducts, "N",
		"CODPROD, DESCRPROD, ATIVO",
		"ATIVO = 'S'", "")

	return s.query(payload)
}

func (s *SankhyaService) ListClients() ([]domain.Record, error) {
	payload := newQuery(entityClients, "N",
		"CODPARC, NOMEPARC, CGC_CPF, CLIENTE, ATIVO",
		"CLIENTE = 'S' AND ATIVO = 'S'", "")

	return s.query(payload)
}

func (s *SankhyaService) query(payload *sankhyadomain.QueryRequest) ([]domain.Record, error) {
	body, err := s.client.Execute(s.cfg.Sankhya.ServiceURL, http.MethodPost, payload)
	if err != nil {
		return nil, err
	}

	var response sankhyadomain.QueryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do loadRecords: %w", err)
	}

	if response.ResponseBody == nil || response.ResponseBody.Entities == nil {
		return []domain.Record{}, nil
	}

	return MapEntities(response.ResponseBody.Entities)
}

func leadsCriteria(filter domain.AnalysisFilter, userID int, isAdmin bool) string {
	criteria := fmt.Sprintf(
		"DATA_CRIACAO BETWEEN '%s' AND '%s' AND ATIVO = 'S'",
		utils.ToSankhyaDate(filter.StartDate),
		utils.ToSankhyaDate(filter.EndDate),
	)

	if !isAdmin {
		criteria += fmt.Sprintf(" AND CODUSUARIO = %d", userID)
	}

	return criteria
}

func newQuery(rootEntity, presentationFields, fieldList, criteria, ordering string) *sankhyadomain.QueryRequest {
	dataSet := sankhyadomain.DataSet{
		RootEntity:                rootEntity,
		IncludePresentationFields: presentationFields,
		OffsetPage:                nil,
		DisableRowsLimit:          true,
		Entity: sankhyadomain.Entity{
			Fieldset: sankhyadomain.Fieldset{List: fieldList},
		},
	}

	if criteria != "" {
		dataSet.Criteria = &sankhyadomain.Criteria{
			Expression: sankhyadomain.Expression{Value: criteria},
		}
	}

	if ordering != "" {
		dataSet.Ordering = &sankhyadomain.Ordering{
			Expression: sankhyadomain.Expression{Value: ordering},
		}
	}

	return &sankhyadomain.QueryRequest{
		RequestBody: sankhyadomain.QueryRequestBody{DataSet: dataSet},
	}
}
