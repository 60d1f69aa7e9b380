// Package checklists holds the static checklist templates that gate each
// phase of the order pipeline, keyed by order type.
package checklists

import "teledias_workflow/internal/domain/entities"

// Template maps a phase to its ordered list of required task descriptions.
// Phases absent from a template have no required tasks and are trivially
// passable for that order type.
type Template map[entities.Phase][]string

// Registry resolves the checklist template for an order type.
//
// Templates are immutable at runtime: editing them only affects orders
// created thereafter, because items are copied into per-order rows at
// creation time.
type Registry struct {
	byType map[entities.OrderType]Template
}

// NewRegistry returns the registry loaded with the built-in templates.
func NewRegistry() *Registry {
	return &Registry{byType: builtinTemplates}
}

// ForType returns the template for t. Unknown types resolve to the standard
// sale template rather than failing, so order creation is never blocked by a
// bad type value.
func (r *Registry) ForType(t entities.OrderType) Template {
	if tpl, ok := r.byType[t]; ok {
		return tpl
	}
	return r.byType[entities.OrderTypeVenda]
}

// Tasks returns the ordered task list for (type, phase). An empty slice means
// the phase has no required tasks for that type.
func (r *Registry) Tasks(t entities.OrderType, p entities.Phase) []string {
	return r.ForType(t)[p]
}

var builtinTemplates = map[entities.OrderType]Template{
	entities.OrderTypeVenda: {
		entities.PhaseComercial: {
			"Analisar dados da empresa e sócios (CNPJ, Mídias, JusBrasil, CCC, Protesto)",
			"Verificar e atualizar endereço no parceiros e conferir no Google Imagens",
			"Verificar se o material é para uso e consumo ou revenda",
			"Em caso de cobrança de frete, anexar como \"Complemento de Locação\" na proposta",
			"Consultar disponibilidade de estoque no grupo",
			"Analisar se a programação será cobrada à parte",
			"Informar número da proposta aprovada no card",
			"Incluir na agenda externa a data de entrega",
			"Venda de RPD 8: Solicitar licença de ativação à técnica",
			"Pré-venda: Enviar vídeo de agradecimento",
		},
		entities.PhaseLogistica: {
			"Verificar necessidade de compra de material e incluir na lista/planilha PP",
			"Fazer separação física do material (Scanner de Seriais)",
			"Entregar ao Laboratório Técnico para programação/configuração",
			"Conferir material devolvido do Laboratório",
			"Confirmar orçamento de venda no caminhão (Qtde, Valor, Modelo)",
			"Se fora do RJ: Despachar via transportadora/correios e preencher OS de coleta",
			"Separar material na prateleira do Consultor com etiquetas, sacolas e brindes",
		},
		entities.PhaseLaboratorio: {
			"Retirar senhas de rádios que serão vendidos",
			"Realizar programação (se frequência do cliente) e testes",
			"Inserir selo de controle de garantia (casca de ovo)",
		},
		entities.PhaseConsultorExterno: {
			"Conferir material recebido da Logística com a DANFE",
			"Testar e conferir quantidades com o cliente no ato da entrega",
			"Dar instruções básicas de uso e apresentar projeto social",
		},
		entities.PhaseFinanceiro: {
			"Verificação inicial: Confirmar empresa e conferir valores/produtos com o card",
			"Emissão de NF de Venda (Validar NCM, Posição Fiscal, IE)",
			"Gerar e enviar boleto junto com a NF",
			"Se houver Nota de Empenho, conferir no site do portal",
			"Lançar despesas de frete ou compra de material no Contas a Pagar",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Solicitação x Entrega, Proposta x Card, Orçamento com componentes",
			"Verificar emissão da Nota de Venda",
			"Verificar se OS foi assinada",
		},
	},
	entities.OrderTypeVendaSeminovos: {
		entities.PhaseComercial: {
			"Analisar dados da empresa e sócios (CNPJ, CCC, Protesto)",
			"Verificar necessidade de programação para o equipamento",
			"Em caso de cobrança de frete, anexar como \"Complemento de Locação\" na proposta",
			"Informar número da proposta aprovada no card e agendar entrega",
		},
		entities.PhaseLogistica: {
			"Fazer separação física do material e entregar ao Laboratório (Scanner de Seriais)",
			"Anexar FOTOS do produto para certificar o estado (Seminovo)",
			"Confirmar orçamento de venda (Qtde, Valor, Modelo) e despachar/liberar para Consultor",
		},
		entities.PhaseLaboratorio: {
			"Retirar senhas antigas do equipamento",
			"Realizar limpeza detalhada do material",
			"Realizar programação e testes rigorosos",
			"Inserir selo de controle de garantia (casca de ovo)",
		},
		entities.PhaseConsultorExterno: {
			"Conferir material recebido da Logística com a DANFE",
			"Testar e conferir quantidades com o cliente no ato da entrega",
			"Dar instruções básicas de uso e apresentar projeto social",
		},
		entities.PhaseFinanceiro: {
			"Verificação inicial: Confirmar empresa e conferir valores/produtos com o card",
			"Emissão de NF de Venda — Usar Posição Fiscal \"VENDA DE ATIVO\"",
			"Gerar e enviar boleto junto com a NF",
			"Lançar despesas de frete ou compra de material no Contas a Pagar",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Solicitação x Entrega, Proposta x Card, Orçamento com componentes",
			"Verificar emissão da Nota de Venda",
			"Verificar se OS foi assinada",
		},
	},
	entities.OrderTypeManutencaoRadios: {
		entities.PhaseComercial: {
			"Analisar dados da empresa e sócios (CNPJ, CCC, Protesto)",
			"Se receber Nota de Remessa do cliente, anexar no card do pedido",
			"Agendar retirada e/ou devolução do material com o cliente",
			"Conferir proposta aprovada: Venda de Peças x Serviço de Mão de Obra",
		},
		entities.PhaseLogistica: {
			"Verificar necessidade de cotar transportadora para coleta/devolução",
			"Recebimento: Apenas com NF (Intelbras) ou OS preenchida e assinada (Clientes)",
			"Tirar FOTO do material no ato da chegada",
			"Entregar ao Laboratório Técnico para laudo",
			"Retorno: Confirmar orçamento aprovado, separar na prateleira ou despachar",
		},
		entities.PhaseLaboratorio: {
			"Assistência Intelbras: Abrir OS de garantia e guardar componentes para logística reversa",
			"Efetuar Análise Técnica e preencher Laudo (usar Tabela Indenizatória de Preços)",
			"Se não houver peça em estoque: Informar compra necessária no grupo",
			"Verificar itens faltantes (bateria, antena, clip) e incluir na proposta",
		},
		entities.PhaseConsultorExterno: {
			"Retirada: Foto do material, OS relatando defeitos e números de série",
			"Devolução: Testar equipamento com selo de garantia na presença do cliente",
		},
		entities.PhaseFinanceiro: {
			"Conferência da proposta aprovada (valores e itens)",
			"Emissão de NF de Produtos (Peças/Componentes) separada",
			"Emissão de NF de Serviços (Mão de Obra) separada",
			"Exceção: Clientes como \"Nacional Gás\" aceitam apenas Nota de Serviço unificada",
			"Verificar se cliente emitiu Nota de Retorno (caso tenha enviado remessa)",
			"Alimentar Contas a Receber com nº da OS vinculada",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Laudo x Proposta x Orçamento com componentes",
			"Verificar emissão das Notas Fiscais (Produtos + Serviços)",
			"Verificar se OS de entrega/devolução foi assinada pelo cliente",
		},
	},
	entities.OrderTypeEventos: {
		entities.PhaseComercial: {
			"Validação cadastral completa da empresa (CNPJ, CCC, Protesto)",
			"Verificar necessidade de acessórios (Lapela) e programação anexada",
			"Alimentar valores de Tabela Indenizatória no produto",
			"Definir frequência a ser utilizada (Nossa ou do Cliente)",
			"Contrato: Oferecer Upgrade após assinatura",
		},
		entities.PhaseLogistica: {
			"Separação em massa: Enviar lapelas e baterias a mais (reserva)",
			"Verificar necessidade de régua de tomadas para o evento",
			"Alimentar contrato de locação e registrar Saída de Estoque",
			"Tirar FOTO das baterias carregadas na base antes do envio",
			"Retorno: Cotar coleta com transportadora",
			"Retorno: Conferir material devolvido e separar para Análise de Indenização",
		},
		entities.PhaseLaboratorio: {
			"Programação e testes — Validar 100% das baterias",
			"Rádios POC: Verificar consumo de dados e bloquear chip após o evento",
			"Análise de Indenização no retorno: Laudo técnico com fotos dos danos",
		},
		entities.PhaseConsultorExterno: {
			"Contagem rigorosa na frente do cliente (Entrega e Retirada)",
			"OS detalhada com números de série e assinatura do cliente",
			"Treinamento rápido de uso dos equipamentos no local do evento",
		},
		entities.PhaseFinanceiro: {
			"Emitir Nota de Remessa para saída do material",
			"Contrato: Certificar que está como \"Determinado\" (não recorrente)",
			"Faturamento: Verificar se é antecipado ou pós-evento",
			"Indenizações: Enviar e-mail com Laudo, Foto, Boleto e NF de Ressarcimento (se houver danos)",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Material enviado x devolvido x contrato",
			"Verificar emissão da Nota de Remessa e Fatura",
			"Verificar se OS e Laudo de Indenização foram finalizados",
		},
	},
	entities.OrderTypeClienteFixo: {
		entities.PhaseComercial: {
			"Validação cadastral completa e consulta de disponibilidade de estoque",
			"Definir frequência a ser utilizada e informar proposta aprovada no card",
			"Confecção de Contrato (Indeterminado)",
			"Boas-vindas: Enviar vídeo de agradecimento e informar canal de suporte",
		},
		entities.PhaseLogistica: {
			"Separação e alimentação de estoque (Próprio ou Relocação)",
			"Cotação de frete (peso/medidas) e enviar valores ao Financeiro",
			"Dar retorno ao cliente sobre preferência de Clip ou Estojo",
			"[RELOCAÇÃO] Identificar e separar material do Parceiro (Scanner/Bipagem)",
			"[RELOCAÇÃO] Fotografar números de série e salvar NF de Remessa do fornecedor no card",
			"[RELOCAÇÃO] Diferenciar estoque \"Nosso\" vs \"Parceiro\"",
		},
		entities.PhaseLaboratorio: {
			"Ativação de Chips POC (se houver)",
			"Programação completa (incluindo senha e bloqueio de canal ocupado)",
			"Inclusão de frequência no Multidados",
			"[RELOCAÇÃO] Gestão de chips POC de parceiros (Arquia/André)",
		},
		entities.PhaseConsultorExterno: {
			"Entrega técnica: Ensinar carregamento correto e cuidados com o equipamento",
			"Informar na OS qual acessório ficou com o cliente (Clip ou Estojo)",
			"Checklist de atendimento especial (Enauta/Brasil Forte)",
		},
		entities.PhaseFinanceiro: {
			"Emitir Nota de Remessa para saída do material",
			"Criar Contrato no Orçamento (Garantir Pro-Rata manual se card batido após entrega)",
			"Ajustes Contrato: Código 2911, Indeterminado, Faturamento dia 01, Índice IGPM/IPCA",
			"Lançar fretes e backups de chips no Contas a Pagar",
			"[RELOCAÇÃO] Salvar NF de Remessa do fornecedor e lançar mensalidade do parceiro",
			"[RELOCAÇÃO] Atualizar backup com custos de relocação para cálculo de margem",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Proposta x Contrato x Entrega",
			"Verificar emissão de Nota de Remessa e Contrato ativo",
			"Verificar se OS de entrega foi assinada",
		},
	},
	entities.OrderTypeAditivo: {
		entities.PhaseComercial: {
			"Verificar pendência financeira do cliente antes de prosseguir",
			"Aditivo de rádios deve ir com Tabela Indenizatória anexa",
			"Definir logística: Transportadora ou Cliente retira?",
		},
		entities.PhaseLogistica: {
			"Separação e envio do material adicional (similar a Cliente Fixo)",
			"Atenção ao retorno de itens trocados (se for troca de modelo)",
			"[RELOCAÇÃO] Identificar e separar material do Parceiro (Scanner/Bipagem)",
			"[RELOCAÇÃO] Fotografar números de série e salvar NF de Remessa do fornecedor no card",
			"[RELOCAÇÃO] Diferenciar estoque \"Nosso\" vs \"Parceiro\"",
		},
		entities.PhaseLaboratorio: {
			"Programação dos equipamentos adicionais seguindo padrão do contrato existente",
			"Testes completos antes do envio",
			"[RELOCAÇÃO] Gestão de chips POC de parceiros (Arquia/André)",
		},
		entities.PhaseConsultorExterno: {
			"Entrega técnica seguindo padrão de Cliente Fixo",
			"Atualizar OS com os novos itens entregues (modelos e seriais)",
		},
		entities.PhaseFinanceiro: {
			"Criar contrato do aditivo para cobrança Pro-Rata",
			"Ajuste de itens a mais: Retirar clip/estojo excedente ou emitir nota de retorno",
			"Atualizar locais/postos de cobrança no sistema",
			"[RELOCAÇÃO] Salvar NF de Remessa do fornecedor e lançar mensalidade do parceiro",
			"[RELOCAÇÃO] Atualizar backup com custos de relocação para cálculo de margem",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Aditivo x Contrato original x Entrega",
			"Verificar atualização do contrato com novos itens",
			"Verificar se OS foi assinada com itens adicionais",
		},
	},
	entities.OrderTypeCancelamento: {
		entities.PhaseComercial: {
			"Pedir formalização do cancelamento por e-mail e Nota de Devolução",
			"Alinhar retirada: Transportadora ou Cliente posta?",
			"Retirar cliente do \"Mãe de Todos\" e avisar Aviso Prévio ao Financeiro",
		},
		entities.PhaseLogistica: {
			"Cotar retirada com transportadora e lançar código de rastreio",
			"Receber devolução e transferir para Estoque de Manutenção (Análise)",
			"Processo de Separação de Indenização (se houver danos no material)",
			"[RELOCAÇÃO] Identificar material do Parceiro devolvido (Scanner/Bipagem)",
			"[RELOCAÇÃO] Fotografar números de série e preparar devolução ao fornecedor",
		},
		entities.PhaseLaboratorio: {
			"Suspender Chips POC e remover acesso PTT Manager",
			"Análise de Indenização: Taxa de limpeza e laudo de danos com fotos",
			"Guardar material indenizado na sucata por 30 dias",
			"[RELOCAÇÃO] Gestão de chips POC de parceiros — devolver ao fornecedor",
		},
		entities.PhaseConsultorExterno: {
			"OS de Retirada: Relatar que material vai para análise em bancada",
			"Checklist de encerramento com conferência de itens devolvidos",
		},
		entities.PhaseFinanceiro: {
			"Responder e-mail detalhando cobranças (Pro-Rata, Aviso Prévio, Indenização)",
			"Baixar contrato no sistema após confirmação de retorno do material",
			"Emitir boletos finais e Notas de Débito/Ressarcimento conforme laudo",
			"[RELOCAÇÃO] Devolver NF de Remessa ao fornecedor e encerrar mensalidade do parceiro",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Material devolvido x Contrato x Laudo de Indenização",
			"Verificar baixa do contrato no sistema",
			"Verificar emissão de boletos finais e notas de encerramento",
		},
	},
	entities.OrderTypeChamadoTecnico: {
		entities.PhaseComercial: {
			"Verificar pendência financeira do cliente",
			"POC: Tentar resolução remota (conexão/chip) antes de agendar visita",
			"Criar proposta de troca ou preventiva",
		},
		entities.PhaseLogistica: {
			"Separação de material de backup/troca",
			"Retorno de material defeituoso: Receber, conferir e enviar para Análise de Indenização",
			"[RELOCAÇÃO] Identificar se material defeituoso é do Parceiro (Scanner/Bipagem)",
			"[RELOCAÇÃO] Fotografar números de série e notificar fornecedor",
		},
		entities.PhaseLaboratorio: {
			"Avaliar material retornado e emitir Laudo para Indenização",
			"Programação e testes de equipamentos de troca/backup",
			"[RELOCAÇÃO] Gestão de chips POC de parceiros — notificar troca",
		},
		entities.PhaseConsultorExterno: {
			"Levantamento de itens defeituosos no local do cliente",
			"Substituir equipamento e mostrar avarias ao cliente (mau uso?)",
			"Preventiva: Limpeza e testes de botões/baterias no local",
		},
		entities.PhaseFinanceiro: {
			"Emitir Nota de Remessa da troca",
			"Nota de Retorno do material defeituoso",
			"Cobrança de Indenização se laudo apontar mau uso (sem isenção Safe)",
			"[RELOCAÇÃO] Notificar fornecedor sobre troca e atualizar Contas a Pagar",
		},
		entities.PhaseControleQualidade: {
			"Conferência final: Material trocado x Laudo x OS de campo",
			"Verificar emissão de Notas (Remessa + Retorno)",
			"Verificar se laudo de indenização foi concluído (se aplicável)",
		},
	},
}
