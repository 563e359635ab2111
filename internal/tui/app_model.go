package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkovalev/qr-mint/internal/service"
	"github.com/dkovalev/qr-mint/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenKindSelect screen = iota
	screenFormWiFi
	screenFormVCard
	screenFormEmail
	screenFormPhone
	screenFormSocial
	screenFormText
	screenFormGeo
	screenResult
	screenHistory
	screenAbout
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	currentScreen screen

	kindSelect kindSelectModel
	formWiFi   formWiFiModel
	formVCard  formVCardModel
	formEmail  formEmailModel
	formPhone  formPhoneModel
	formSocial formSocialModel
	formText   formTextModel
	formGeo    formGeoModel
	result     resultModel
	history    historyModel
	about      aboutModel

	// returnScreen is where esc from the result screen leads: the kind menu
	// after a fresh generation, the history list after reopening an entry.
	returnScreen screen

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		currentScreen: screenKindSelect,
		kindSelect:    newKindSelectModel(),
		returnScreen:  screenKindSelect,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteEntry(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case resultReadyMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(generateErrorMessage(msg.err))
			return m, nil
		}
		m.result = newResultModel(msg.entry, msg.art)
		m.currentScreen = screenResult
		return m, nil
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.history.items = msg.items
		if m.history.idx >= len(m.history.items) {
			m.history.idx = len(m.history.items) - 1
		}
		if m.history.idx < 0 {
			m.history.idx = 0
		}
		return m, nil
	case entryDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		return m, m.cmdLoadHistory()
	case savedPNGMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.result.status = "Saved to " + msg.path
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.result.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.result.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenKindSelect:
		return m.updateKindSelect(msg)
	case screenFormWiFi:
		return m.updateFormWiFi(msg)
	case screenFormVCard:
		return m.updateFormVCard(msg)
	case screenFormEmail:
		return m.updateFormEmail(msg)
	case screenFormPhone:
		return m.updateFormPhone(msg)
	case screenFormSocial:
		return m.updateFormSocial(msg)
	case screenFormText:
		return m.updateFormText(msg)
	case screenFormGeo:
		return m.updateFormGeo(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenKindSelect:
		body = m.kindSelect.View()
	case screenFormWiFi:
		body = m.formWiFi.View()
	case screenFormVCard:
		body = m.formVCard.View()
	case screenFormEmail:
		body = m.formEmail.View()
	case screenFormPhone:
		body = m.formPhone.View()
	case screenFormSocial:
		body = m.formSocial.View()
	case screenFormText:
		body = m.formText.View()
	case screenFormGeo:
		body = m.formGeo.View()
	case screenResult:
		body = m.result.View()
	case screenHistory:
		body = m.history.View()
	case screenAbout:
		body = m.about.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.formWiFi.submitting = v
	m.formVCard.submitting = v
	m.formEmail.submitting = v
	m.formPhone.submitting = v
	m.formSocial.submitting = v
	m.formText.submitting = v
	m.formGeo.submitting = v
}

func (m appModel) updateKindSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.kindSelect.idx > 0 {
			m.kindSelect.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.kindSelect.idx < len(m.kindSelect.kinds)-1 {
			m.kindSelect.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.openForm(m.kindSelect.current())
	case key.Matches(keyMsg, keys.history):
		m.history = newHistoryModel()
		m.currentScreen = screenHistory
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.about):
		m.about = newAboutModel(m.buildInfo, m.services.GenerateService.RemoteEnabled())
		m.currentScreen = screenAbout
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *appModel) openForm(kind models.ContentKind) {
	switch kind {
	case models.WiFi:
		m.formWiFi = newFormWiFiModel()
		m.currentScreen = screenFormWiFi
	case models.VCard:
		m.formVCard = newFormVCardModel()
		m.currentScreen = screenFormVCard
	case models.Email:
		m.formEmail = newFormEmailModel()
		m.currentScreen = screenFormEmail
	case models.WhatsApp, models.SMS:
		m.formPhone = newFormPhoneModel(kind)
		m.currentScreen = screenFormPhone
	case models.SocialLink:
		m.formSocial = newFormSocialModel()
		m.currentScreen = screenFormSocial
	case models.GenericText:
		m.formText = newFormTextModel()
		m.currentScreen = screenFormText
	case models.Geo:
		m.formGeo = newFormGeoModel()
		m.currentScreen = screenFormGeo
	}
	m.returnScreen = screenKindSelect
}

func (m appModel) updateFormWiFi(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKindSelect
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formWiFi = focusNextWiFi(m.formWiFi)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formWiFi = focusPrevWiFi(m.formWiFi)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.formWiFi.onEncryption() {
				m.formWiFi.encIdx = (m.formWiFi.encIdx - 1 + len(wifiEncryptions)) % len(wifiEncryptions)
				return m, nil
			}
		case key.Matches(keyMsg, keys.right):
			if m.formWiFi.onEncryption() {
				m.formWiFi.encIdx = (m.formWiFi.encIdx + 1) % len(wifiEncryptions)
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			m.formWiFi.submitting = true
			return m, m.cmdGenerate(m.formWiFi.toRequest())
		}
	}

	if m.formWiFi.onEncryption() {
		return m, nil
	}
	var cmd tea.Cmd
	m.formWiFi.inputs[m.formWiFi.focus], cmd = m.formWiFi.inputs[m.formWiFi.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormVCard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKindSelect
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formVCard = focusNextVCard(m.formVCard)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formVCard = focusPrevVCard(m.formVCard)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.formVCard.submitting = true
			return m, m.cmdGenerate(m.formVCard.toRequest())
		}
	}

	var cmd tea.Cmd
	m.formVCard.inputs[m.formVCard.focus], cmd = m.formVCard.inputs[m.formVCard.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormEmail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKindSelect
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formEmail = focusNextEmail(m.formEmail)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formEmail = focusPrevEmail(m.formEmail)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.formEmail.submitting = true
			return m, m.cmdGenerate(m.formEmail.toRequest())
		}
	}

	var cmd tea.Cmd
	m.formEmail.inputs[m.formEmail.focus], cmd = m.formEmail.inputs[m.formEmail.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormPhone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKindSelect
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formPhone = focusNextPhone(m.formPhone)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formPhone = focusPrevPhone(m.formPhone)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.formPhone.submitting = true
			return m, m.cmdGenerate(m.formPhone.toRequest())
		}
	}

	var cmd tea.Cmd
	m.formPhone.inputs[m.formPhone.focus], cmd = m.formPhone.inputs[m.formPhone.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormSocial(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKindSelect
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formSocial = focusNextSocial(m.formSocial)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formSocial = focusPrevSocial(m.formSocial)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.formSocial.submitting = true
			return m, m.cmdGenerate(m.formSocial.toRequest())
		}
	}

	var cmd tea.Cmd
	m.formSocial.inputs[m.formSocial.focus], cmd = m.formSocial.inputs[m.formSocial.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFormText(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKindSelect
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.formText.submitting = true
			return m, m.cmdGenerate(m.formText.toRequest())
		}
	}

	var cmd tea.Cmd
	m.formText.inputs[0], cmd = m.formText.inputs[0].Update(msg)
	return m, cmd
}

func (m appModel) updateFormGeo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenKindSelect
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formGeo = focusNextGeo(m.formGeo)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formGeo = focusPrevGeo(m.formGeo)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			req, err := m.formGeo.toRequest()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.formGeo.submitting = true
			return m, m.cmdGenerate(req)
		}
	}

	var cmd tea.Cmd
	m.formGeo.inputs[m.formGeo.focus], cmd = m.formGeo.inputs[m.formGeo.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.returnScreen
		if m.returnScreen == screenHistory {
			return m, m.cmdLoadHistory()
		}
		return m, nil
	case key.Matches(keyMsg, keys.save):
		return m, m.cmdSavePNG(m.result.encoded())
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyPayload(m.result.encoded())
	case key.Matches(keyMsg, keys.newItem):
		m.currentScreen = screenKindSelect
		m.returnScreen = screenKindSelect
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.items)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.history.current()
		if !ok {
			return m, nil
		}
		m.returnScreen = screenHistory
		return m, m.cmdOpenEntry(entry)
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.history.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fitText(entry.Payload, 40)
		m.pendingDelete = entry.ID
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenKindSelect
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenKindSelect
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// cmdGenerate runs the full generation pipeline off the update loop:
// validate and encode, record in history, render terminal art.
func (m appModel) cmdGenerate(req models.GenerateRequest) tea.Cmd {
	ctx := m.ctx
	generate := m.services.GenerateService
	history := m.services.HistoryService
	render := m.services.RenderService
	return func() tea.Msg {
		encoded, err := generate.Generate(ctx, req)
		if err != nil {
			return resultReadyMsg{err: err}
		}

		entry, err := history.Record(ctx, encoded)
		if err != nil {
			return resultReadyMsg{err: err}
		}

		art, err := render.TerminalArt(ctx, encoded)
		if err != nil {
			return resultReadyMsg{err: err}
		}

		return resultReadyMsg{entry: entry, art: art}
	}
}

// cmdOpenEntry re-renders a stored payload without recording it again.
func (m appModel) cmdOpenEntry(entry models.HistoryEntry) tea.Cmd {
	ctx := m.ctx
	render := m.services.RenderService
	return func() tea.Msg {
		art, err := render.TerminalArt(ctx, models.EncodedPayload{Kind: entry.Kind, Text: entry.Payload})
		if err != nil {
			return resultReadyMsg{err: err}
		}
		return resultReadyMsg{entry: entry, art: art}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService
	return func() tea.Msg {
		items, err := history.List(ctx, 0)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdDeleteEntry(id string) tea.Cmd {
	ctx := m.ctx
	history := m.services.HistoryService
	return func() tea.Msg {
		err := history.Delete(ctx, id)
		return entryDeletedMsg{err: err}
	}
}

func (m appModel) cmdSavePNG(encoded models.EncodedPayload) tea.Cmd {
	ctx := m.ctx
	share := m.services.ShareService
	return func() tea.Msg {
		path, err := share.SavePNG(ctx, encoded, 0)
		return savedPNGMsg{path: path, err: err}
	}
}

func (m appModel) cmdCopyPayload(encoded models.EncodedPayload) tea.Cmd {
	share := m.services.ShareService
	return func() tea.Msg {
		return copiedMsg{err: share.CopyPayload(encoded)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// generateErrorMessage turns pipeline errors into something a user can act
// on. Validation errors get per-field wording; everything else passes
// through unchanged.
func generateErrorMessage(err error) string {
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		return err.Error()
	}

	label, ok := fieldLabels[validationErr.Field]
	if !ok {
		label = validationErr.Field
	}

	switch validationErr.Reason {
	case models.ReasonMissing:
		return fmt.Sprintf("%s is required", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

var fieldLabels = map[string]string{
	"ssid":        "Network name",
	"password":    "Password",
	"firstName":   "First name",
	"lastName":    "Last name",
	"mobile":      "Mobile number",
	"email":       "Email",
	"recipient":   "Recipient",
	"callingCode": "Country code",
	"localNumber": "Phone number",
	"url":         "Profile URL",
	"text":        "Text",
	"latitude":    "Latitude",
	"longitude":   "Longitude",
}

func focusNextWiFi(m formWiFiModel) formWiFiModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func focusPrevWiFi(m formWiFiModel) formWiFiModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

func focusNextVCard(m formVCardModel) formVCardModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevVCard(m formVCardModel) formVCardModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextEmail(m formEmailModel) formEmailModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevEmail(m formEmailModel) formEmailModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextPhone(m formPhoneModel) formPhoneModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevPhone(m formPhoneModel) formPhoneModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextSocial(m formSocialModel) formSocialModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevSocial(m formSocialModel) formSocialModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextGeo(m formGeoModel) formGeoModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevGeo(m formGeoModel) formGeoModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
