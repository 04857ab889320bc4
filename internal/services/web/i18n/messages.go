package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	en := language.AmericanEnglish

	// Configuration panel
	message.SetString(en, "panel.heading", "ROI Configuration")
	message.SetString(en, "panel.description", "Describe your change-management initiative to project its return on investment.")
	message.SetString(en, "panel.field.project_budget", "Project budget")
	message.SetString(en, "panel.field.employee_impact", "Employees impacted")
	message.SetString(en, "panel.field.project_duration", "Project duration (months)")
	message.SetString(en, "panel.field.average_salary", "Average monthly salary")
	message.SetString(en, "panel.field.risk_level", "Risk level")
	message.SetString(en, "panel.field.industry_type", "Industry")
	message.SetString(en, "panel.field.previous_success", "Previous success rate (0-100)")
	message.SetString(en, "panel.field.leadership_alignment", "Leadership alignment (0-5)")
	message.SetString(en, "panel.field.employee_readiness", "Employee readiness (0-5)")
	message.SetString(en, "panel.field.communication_plan", "Communication plan (0-5)")
	message.SetString(en, "panel.field.training_budget", "Training budget")
	message.SetString(en, "panel.submit", "Calculate ROI")

	// Error pages
	message.SetString(en, "web.error.title_not_found", "Page not found")
	message.SetString(en, "web.error.title_server_error", "Something went wrong")
	message.SetString(en, "web.error.message_not_found", "The page you were looking for does not exist.")
	message.SetString(en, "web.error.message_server_error", "An unexpected error occurred. Please try again.")

	pt := language.BrazilianPortuguese

	message.SetString(pt, "panel.heading", "Configuração de ROI")
	message.SetString(pt, "panel.description", "Descreva sua iniciativa de gestão de mudanças para projetar o retorno sobre o investimento.")
	message.SetString(pt, "panel.field.project_budget", "Orçamento do projeto")
	message.SetString(pt, "panel.field.employee_impact", "Funcionários impactados")
	message.SetString(pt, "panel.field.project_duration", "Duração do projeto (meses)")
	message.SetString(pt, "panel.field.average_salary", "Salário mensal médio")
	message.SetString(pt, "panel.field.risk_level", "Nível de risco")
	message.SetString(pt, "panel.field.industry_type", "Setor")
	message.SetString(pt, "panel.field.previous_success", "Taxa de sucesso anterior (0-100)")
	message.SetString(pt, "panel.field.leadership_alignment", "Alinhamento da liderança (0-5)")
	message.SetString(pt, "panel.field.employee_readiness", "Prontidão dos funcionários (0-5)")
	message.SetString(pt, "panel.field.communication_plan", "Plano de comunicação (0-5)")
	message.SetString(pt, "panel.field.training_budget", "Orçamento de treinamento")
	message.SetString(pt, "panel.submit", "Calcular ROI")

	message.SetString(pt, "web.error.title_not_found", "Página não encontrada")
	message.SetString(pt, "web.error.title_server_error", "Algo deu errado")
	message.SetString(pt, "web.error.message_not_found", "A página que você procura não existe.")
	message.SetString(pt, "web.error.message_server_error", "Ocorreu um erro inesperado. Tente novamente.")
}
