package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"health-predict-backend/internal/domain/entity"
)

var alertTemplate = template.Must(template.New("alert").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e2e8f0; border-radius: 10px;">
    <div style="text-align: center; margin-bottom: 30px;">
        <h1 style="color: #1e293b; margin: 0;">Health Prediction Result</h1>
        <p style="color: #64748b;">{{.PredictionType}} Analysis</p>
    </div>

    <div style="background-color: {{.RiskColor}}20; border-left: 5px solid {{.RiskColor}}; padding: 20px; border-radius: 5px; margin-bottom: 30px;">
        <h2 style="color: {{.RiskColor}}; margin: 0 0 10px 0;">Risk Level: {{.RiskLevel}}</h2>
        <p style="margin: 0; color: #334155;">Based on the analysis of your health metrics.</p>
    </div>

    <div style="margin-bottom: 30px;">
        <h3 style="color: #1e293b; border-bottom: 2px solid #f1f5f9; padding-bottom: 10px;">Recommended Actions</h3>
        <ul style="color: #475569; line-height: 1.6;">
            {{range .Recommendations}}<li><strong>{{.Title}}:</strong> {{.Description}}</li>{{end}}
        </ul>
    </div>

    <div style="text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #e2e8f0; color: #94a3b8; font-size: 12px;">
        <p>This is an automated alert from your Health Prediction System.</p>
        <p>Please consult with a medical professional for accurate diagnosis.</p>
    </div>
</div>
`))

type alertTemplateData struct {
	PredictionType  string
	RiskLevel       string
	RiskColor       template.CSS
	Recommendations []entity.Recommendation
}

func riskColor(riskLevel string) string {
	switch riskLevel {
	case entity.RiskLevelHigh:
		return "#ef4444"
	case entity.RiskLevelMedium:
		return "#f59e0b"
	default:
		return "#10b981"
	}
}

// AlertSubject builds the subject line for a risk alert email.
func AlertSubject(riskLevel string) string {
	return fmt.Sprintf("Health Prediction Result: %s Risk Detected", strings.ToUpper(riskLevel))
}

// RenderAlertHTML renders the alert email body.
func RenderAlertHTML(predictionType, riskLevel string, recommendations []entity.Recommendation) (string, error) {
	title := predictionType
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}

	var buf bytes.Buffer
	err := alertTemplate.Execute(&buf, alertTemplateData{
		PredictionType:  title,
		RiskLevel:       strings.ToUpper(riskLevel),
		RiskColor:       template.CSS(riskColor(riskLevel)),
		Recommendations: recommendations,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
