package domain

// Status possíveis de um lead (STATUS_LEAD no Sankhya).
const (
	LeadStatusInProgress = "EM_ANDAMENTO"
	LeadStatusWon        = "GANHO"
	LeadStatusLost       = "PERDIDO"
)

// Status possíveis de uma atividade de lead.
const (
	ActivityStatusWaiting = "AGUARDANDO"
	ActivityStatusLate    = "ATRASADO"
	ActivityStatusDone    = "REALIZADO"
)

// Campos das entidades do CRM no Sankhya, na ordem em que são solicitados
// nos fieldsets das consultas.
const (
	FieldLeadID       = "CODLEAD"
	FieldLeadValue    = "VALOR"
	FieldLeadStatus   = "STATUS_LEAD"
	FieldFunnelID     = "CODFUNIL"
	FieldStageID      = "CODESTAGIO"
	FieldOrderID      = "NUNOTA"
	FieldOrderValue   = "VLRNOTA"
	FieldOrderDate    = "DTNEG"
	FieldClientID     = "CODPARC"
	FieldClientName   = "NOMEPARC"
	FieldSalesperson  = "CODVEND"
	FieldProductID    = "CODPROD"
	FieldProductDescr = "DESCRPROD"
)
