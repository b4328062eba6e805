package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/content-console/internal/contentplan"
	"github.com/MKhiriev/content-console/internal/service"
	"github.com/MKhiriev/content-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// tzForm edits the global fields and the outline of a technical
// specification.
type tzForm struct {
	ctx  context.Context
	tzs  service.ClientTZService
	host ModalHost

	tz models.TechnicalSpecification

	title       *inputField
	author      *inputField
	keywords    *areaField
	count       *inputField
	usageForm   *inputField
	lsi         *areaField
	competitors *areaField
	outline     *areaField
	form        form

	saving bool
	errMsg string
}

func newTZForm(ctx context.Context, tzs service.ClientTZService, host ModalHost, tz models.TechnicalSpecification) *tzForm {
	f := &tzForm{
		ctx:         ctx,
		tzs:         tzs,
		host:        host,
		tz:          tz,
		title:       newInputField("заголовок", 0),
		author:      newInputField("автор", 0),
		keywords:    newAreaField("ключевые слова через запятую", 2),
		count:       newInputField("кол-во символов", 20),
		usageForm:   newInputField("форма употребления", 0),
		lsi:         newAreaField("LSI-фразы через запятую", 2),
		competitors: newAreaField("конкуренты, по одному в строке", 3),
		outline:     newAreaField("H2: Заголовок\n- пункт", 10),
	}

	f.title.SetValue(tz.Title)
	f.author.SetValue(tz.Author)
	f.keywords.SetValue(contentplan.JoinList(tz.Keywords))
	if tz.Count != nil {
		f.count.SetValue(strconv.Itoa(*tz.Count))
	}
	f.usageForm.SetValue(tz.UsageForm)
	f.lsi.SetValue(contentplan.JoinList(tz.LSIPhrases))
	f.competitors.SetValue(strings.Join(tz.Competitors, "\n"))
	f.outline.SetValue(contentplan.BuildOutline(tz.Blocks))

	f.form.add("Заголовок", f.title)
	f.form.add("Автор", f.author)
	f.form.add("Ключевые слова", f.keywords)
	f.form.add("Кол-во", f.count)
	f.form.add("Форма употребления", f.usageForm)
	f.form.add("LSI", f.lsi)
	f.form.add("Конкуренты", f.competitors)
	f.form.add("Структура", f.outline)
	f.form.focusFirst()

	return f
}

func (f *tzForm) titleText() string {
	if f.tz.ID == "" {
		return "Создание ТЗ"
	}
	return "Редактирование ТЗ"
}

func (f *tzForm) open() {
	f.host.Open(ModalContent{Kind: ModalTZForm, Title: f.titleText(), Payload: f})
}

func (f *tzForm) Update(msg tea.Msg) tea.Cmd {
	if saved, ok := msg.(tzSavedMsg); ok {
		f.saving = false
		if saved.err == nil {
			f.host.Close()
			return nil
		}
		if service.IsSessionExpired(saved.err) {
			return func() tea.Msg { return sessionExpiredMsg{} }
		}
		f.errMsg = errorText(saved.err)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.host.Close()
			return nil
		case "ctrl+s":
			if f.saving {
				return nil
			}
			f.saving = true
			f.errMsg = ""
			return f.cmdSave()
		}
	}

	return f.form.update(msg)
}

// build assembles the specification from the inputs. Blocks keep the id
// and collapsed state of the block they replace when the type matches.
func (f *tzForm) build() models.TechnicalSpecification {
	tz := f.tz
	tz.Title = f.title.TrimmedValue()
	tz.Author = f.author.TrimmedValue()
	tz.Keywords = contentplan.SplitList(f.keywords.Value())
	tz.Count = contentplan.ParseCharsDisplay(f.count.Value()).Value
	tz.UsageForm = f.usageForm.TrimmedValue()
	tz.LSIPhrases = contentplan.SplitList(f.lsi.Value())
	tz.Competitors = contentplan.SplitList(f.competitors.Value())

	blocks := contentplan.ParseOutline(f.outline.Value())
	for i := range blocks {
		if i < len(f.tz.Blocks) && f.tz.Blocks[i].Type == blocks[i].Type {
			blocks[i].ID = f.tz.Blocks[i].ID
			blocks[i].Collapsed = f.tz.Blocks[i].Collapsed
		}
	}
	tz.Blocks = blocks
	return tz
}

func (f *tzForm) cmdSave() tea.Cmd {
	ctx, tzs := f.ctx, f.tzs
	tz := f.build()
	return func() tea.Msg {
		saved, err := tzs.Save(ctx, tz)
		return tzSavedMsg{tz: saved, err: err}
	}
}

func (f *tzForm) View() string {
	var b strings.Builder
	b.WriteString(f.form.view())
	b.WriteString("\n\n")
	if f.saving {
		b.WriteString("[Сохранение...]")
	} else {
		b.WriteString("[Сохранить]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: след. поле │ ctrl+s: сохранить │ esc: отмена"))
	return b.String()
}
