// Package report renders a ContractAnalysis as a paginated PDF document.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/tozoll/legal-ai-analyzer/internal/models"
)

var riskLabels = map[string]string{
	models.RiskLow:      "Düşük Risk",
	models.RiskMedium:   "Orta Risk",
	models.RiskHigh:     "Yüksek Risk",
	models.RiskCritical: "Kritik Risk",
}

var riskColors = map[string][3]int{
	models.RiskLow:      {52, 211, 153},
	models.RiskMedium:   {251, 191, 36},
	models.RiskHigh:     {249, 115, 22},
	models.RiskCritical: {239, 68, 68},
}

type renderer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// Render produces the exportable report document. The cp1254 code page keeps
// the Turkish diacritics of the localized labels and any Latin-script
// contract text intact.
func Render(a *models.ContractAnalysis, filename, partyName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetTitle("LexAI Sözleşme Analiz Raporu", true)

	r := &renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("cp1254")}
	r.header(a, filename, partyName)
	r.scores(a)
	r.section("Özet")
	r.paragraph(a.Summary)
	r.metadataRows(a)

	r.listSection("Kırmızı Bayraklar", a.RedFlags)
	r.risks(a.Risks)
	r.parties(a.Parties)
	r.clauses(a.KeyClauses)
	r.listSection("Güçlü Yönler", a.Strengths)
	r.listSection("Eksik Maddeler", a.MissingClauses)
	r.listSection("Öneriler", a.Recommendations)
	r.financial(a.FinancialTerms)
	r.listSection("Fesih Maddeleri", a.TerminationClauses)
	r.listSection("Gizlilik Maddeleri", a.ConfidentialityClauses)
	if a.DisputeResolution != "" {
		r.section("Uyuşmazlık Çözümü")
		r.paragraph(a.DisputeResolution)
	}
	r.listSection("Olağandışı Hükümler", a.UnusualProvisions)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) header(a *models.ContractAnalysis, filename, partyName string) {
	r.pdf.AddPage()
	r.pdf.SetFont("Helvetica", "B", 18)
	r.pdf.SetTextColor(30, 27, 75)
	r.pdf.CellFormat(0, 10, r.tr("LexAI Sözleşme Analiz Raporu"), "", 1, "L", false, 0, "")

	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.SetTextColor(100, 116, 139)
	title := a.ContractTitle
	if title == "" {
		title = filename
	}
	r.pdf.CellFormat(0, 6, r.tr(title), "", 1, "L", false, 0, "")
	if a.ContractType != "" {
		r.pdf.CellFormat(0, 6, r.tr(a.ContractType), "", 1, "L", false, 0, "")
	}
	if partyName != "" {
		r.pdf.CellFormat(0, 6, r.tr(fmt.Sprintf("Analiz perspektifi: %s", partyName)), "", 1, "L", false, 0, "")
	}
	r.pdf.CellFormat(0, 6, time.Now().Format("02.01.2006 15:04"), "", 1, "L", false, 0, "")

	label, ok := riskLabels[a.OverallRisk]
	if !ok {
		label = a.OverallRisk
	}
	color := riskColors[a.OverallRisk]
	r.pdf.Ln(2)
	r.pdf.SetFont("Helvetica", "B", 12)
	r.pdf.SetTextColor(color[0], color[1], color[2])
	r.pdf.CellFormat(0, 8, r.tr(label), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(30, 41, 59)
}

func (r *renderer) scores(a *models.ContractAnalysis) {
	r.pdf.Ln(2)
	cells := []struct {
		label string
		value int
	}{
		{"Risk Skoru", a.RiskScore},
		{"Bütünlük Skoru", a.CompletenessScore},
		{"Adalet Skoru", a.FairnessScore},
	}
	width := 60.0
	for _, cell := range cells {
		r.pdf.SetFont("Helvetica", "B", 20)
		r.pdf.SetTextColor(124, 58, 237)
		r.pdf.CellFormat(width, 10, fmt.Sprintf("%d", cell.value), "", 0, "C", false, 0, "")
	}
	r.pdf.Ln(10)
	for _, cell := range cells {
		r.pdf.SetFont("Helvetica", "", 8)
		r.pdf.SetTextColor(100, 116, 139)
		r.pdf.CellFormat(width, 5, r.tr(cell.label), "", 0, "C", false, 0, "")
	}
	r.pdf.Ln(8)
	r.pdf.SetTextColor(30, 41, 59)
}

func (r *renderer) section(title string) {
	r.pdf.Ln(3)
	r.pdf.SetFillColor(20, 14, 40)
	r.pdf.SetTextColor(167, 139, 250)
	r.pdf.SetFont("Helvetica", "B", 9)
	r.pdf.CellFormat(0, 7, r.tr(strings.ToUpper(title)), "", 1, "L", true, 0, "")
	r.pdf.SetTextColor(30, 41, 59)
	r.pdf.Ln(1)
}

func (r *renderer) paragraph(text string) {
	if text == "" {
		return
	}
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.MultiCell(0, 5, r.tr(text), "", "L", false)
	r.pdf.Ln(1)
}

func (r *renderer) bullet(text string) {
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.CellFormat(5, 5, "-", "", 0, "L", false, 0, "")
	r.pdf.MultiCell(0, 5, r.tr(text), "", "L", false)
}

func (r *renderer) listSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	r.section(title)
	for _, item := range items {
		r.bullet(item)
	}
}

func (r *renderer) metadataRows(a *models.ContractAnalysis) {
	rows := [][2]string{
		{"Yürürlük Tarihi", a.EffectiveDate},
		{"Bitiş Tarihi", a.ExpirationDate},
		{"Yargı Yetkisi", a.Jurisdiction},
		{"Uygulanacak Hukuk", a.GoverningLaw},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.CellFormat(45, 5, r.tr(row[0]), "", 0, "L", false, 0, "")
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.MultiCell(0, 5, r.tr(row[1]), "", "L", false)
	}
}

func (r *renderer) risks(risks []models.RiskItem) {
	if len(risks) == 0 {
		return
	}
	r.section("Riskler")
	for _, risk := range risks {
		color := riskColors[risk.Level]
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.SetTextColor(color[0], color[1], color[2])
		label, ok := riskLabels[risk.Level]
		if !ok {
			label = risk.Level
		}
		r.pdf.CellFormat(0, 6, r.tr(fmt.Sprintf("%s — %s", risk.Title, label)), "", 1, "L", false, 0, "")
		r.pdf.SetTextColor(30, 41, 59)
		r.paragraph(risk.Description)
		if risk.Clause != "" {
			r.paragraph(fmt.Sprintf("İlgili madde: %s", risk.Clause))
		}
		if risk.Recommendation != "" {
			r.paragraph(fmt.Sprintf("Öneri: %s", risk.Recommendation))
		}
	}
}

func (r *renderer) parties(parties []models.PartyInfo) {
	if len(parties) == 0 {
		return
	}
	r.section("Taraflar")
	for _, p := range parties {
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.CellFormat(0, 6, r.tr(fmt.Sprintf("%s (%s)", p.Name, p.Role)), "", 1, "L", false, 0, "")
		for _, o := range p.Obligations {
			r.bullet(fmt.Sprintf("Yükümlülük: %s", o))
		}
		for _, right := range p.Rights {
			r.bullet(fmt.Sprintf("Hak: %s", right))
		}
	}
}

func (r *renderer) clauses(clauses []models.KeyClause) {
	if len(clauses) == 0 {
		return
	}
	r.section("Önemli Maddeler")
	for _, c := range clauses {
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.CellFormat(0, 6, r.tr(fmt.Sprintf("%s [%s / %s]", c.Title, c.Type, c.Importance)), "", 1, "L", false, 0, "")
		r.paragraph(c.Content)
	}
}

func (r *renderer) financial(ft *models.FinancialTerms) {
	if ft == nil {
		return
	}
	r.section("Finansal Koşullar")
	rows := [][2]string{
		{"Tutar", ft.Amount},
		{"Para Birimi", ft.Currency},
		{"Ödeme Koşulları", ft.PaymentTerms},
		{"Cezai Şartlar", ft.Penalties},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.CellFormat(45, 5, r.tr(row[0]), "", 0, "L", false, 0, "")
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.MultiCell(0, 5, r.tr(row[1]), "", "L", false)
	}
}
