package notify

import (
	"fmt"
	"html"
	"strings"
	"text/template"
	"time"

	"callscreen_backend/internal/directory"
	"callscreen_backend/platform/phone"
)

// MessageContext selects the headline of a client summary.
type MessageContext string

const (
	// ContextCall announces an inbound call.
	ContextCall MessageContext = "appel"
	// ContextSearch answers a manual lookup command.
	ContextSearch MessageContext = "recherche"
)

const timestampLayout = "02/01/2006 15:04:05"

// clientMessageTmpl renders the four-block caller summary posted to the
// chat. Telegram parses it as HTML, so every data field goes through esc.
var clientMessageTmpl = template.Must(template.New("client").Funcs(template.FuncMap{
	"esc": html.EscapeString,
}).Parse(`{{.Emoji}} <b>{{.Headline}}</b>
📞 Numéro: <code>{{esc .Phone}}</code>
🏢 Ligne: <code>{{esc .Line}}</code>
🕐 {{.Timestamp}}

👤 <b>IDENTITÉ</b>
▪️ Nom: <b>{{esc .LastName}}</b>
▪️ Prénom: <b>{{esc .FirstName}}</b>
🎂 Naissance: {{esc .BirthDate}}

🏢 <b>CONTACT</b>
📧 Email: {{esc .Email}}
🏠 Adresse: {{esc .Address}}
🏙️ Ville: {{esc .City}} ({{esc .PostalCode}})

🏦 <b>BANQUE</b>
▪️ Banque: {{esc .Bank}}
▪️ SWIFT: <code>{{esc .SWIFT}}</code>
▪️ IBAN: <code>{{esc .IBAN}}</code>

📊 <b>STATUT</b>
▪️ {{esc .Status}} | Appels: {{.CallCount}}`))

type clientMessageView struct {
	Emoji      string
	Headline   string
	Phone      string
	Line       string
	Timestamp  string
	LastName   string
	FirstName  string
	BirthDate  string
	Email      string
	Address    string
	City       string
	PostalCode string
	Bank       string
	SWIFT      string
	IBAN       string
	Status     string
	CallCount  int
}

// FormatClientMessage renders the caller summary for one resolved record.
func FormatClientMessage(record directory.ClientRecord, msgCtx MessageContext, line string, now time.Time) string {
	emoji := "📞"
	if !record.Known() {
		emoji = "❓"
	}

	headline := "APPEL ENTRANT"
	if msgCtx == ContextSearch {
		headline = "RECHERCHE"
	}

	view := clientMessageView{
		Emoji:      emoji,
		Headline:   headline,
		Phone:      record.Phone,
		Line:       phone.FormatInternational(line),
		Timestamp:  now.Format(timestampLayout),
		LastName:   record.LastName,
		FirstName:  record.FirstName,
		BirthDate:  record.BirthDate,
		Email:      record.Email,
		Address:    record.Address,
		City:       record.City,
		PostalCode: record.PostalCode,
		Bank:       record.Bank,
		SWIFT:      record.SWIFT,
		IBAN:       record.IBAN,
		Status:     string(record.Status),
		CallCount:  record.CallCount,
	}

	var sb strings.Builder
	if err := clientMessageTmpl.Execute(&sb, view); err != nil {
		return fmt.Sprintf("%s %s - %s", emoji, headline, record.Phone)
	}
	return sb.String()
}

// FormatIBANMessage renders the reply to an /iban command.
func FormatIBANMessage(iban, bankLabel string) string {
	return fmt.Sprintf("🏦 <b>ANALYSE IBAN</b>\n\n💳 %s\n🏛️ %s", html.EscapeString(iban), html.EscapeString(bankLabel))
}

// FormatStatsMessage renders the reply to a /stats command.
func FormatStatsMessage(stats directory.Stats, line string, tableSize, caisseCount int) string {
	lastUpload := "Aucun"
	if stats.LastUpload != nil {
		lastUpload = stats.LastUpload.Format(timestampLayout)
	}

	return fmt.Sprintf(`📊 <b>STATS</b>
👥 Clients: %d
🏦 Banques détectées: %d
📅 Upload: %s
📞 Ligne: %s
💾 Base: %d banques dont %d caisses Crédit Agricole`,
		stats.TotalClients, stats.BanksDetected, lastUpload,
		phone.FormatInternational(line), tableSize, caisseCount)
}

// FormatUploadMessage renders the chat notice after an export ingestion.
func FormatUploadMessage(filename string, stored, banksDetected int) string {
	name := filename
	if name == "" {
		name = "export"
	}
	return fmt.Sprintf("✅ <b>%s</b> chargé: %d clients, %d banques identifiées", html.EscapeString(name), stored, banksDetected)
}

// FormatClearedMessage renders the chat notice after the directory is emptied.
func FormatClearedMessage(removed int) string {
	return fmt.Sprintf("🗑️ Base vidée (%d clients supprimés)", removed)
}
