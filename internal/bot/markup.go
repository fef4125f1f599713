package bot

import (
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
)

// maxMessageLength is Telegram's limit for one text message, in characters.
const maxMessageLength = 4096

// keyboard renders actions as an inline keyboard, one button per row. The
// action kind travels as the button's unique and the value as its data.
func keyboard(actions []models.Action) *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(actions))
	for _, a := range actions {
		label := a.Label
		if a.Kind == models.ActionAnswer && a.Value != "" && a.Value != a.Label {
			label = fmt.Sprintf("%s. %s", a.Value, a.Label)
		}
		rows = append(rows, menu.Row(menu.Data(label, string(a.Kind), a.Value)))
	}
	menu.Inline(rows...)
	return menu
}

// splitMessage cuts text into chunks of at most limit runes, preferring to
// break at a newline.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}
	var chunks []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		chunks = append(chunks, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
