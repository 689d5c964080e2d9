package styles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimcore/internal/vim"
)

func TestModeStyle(t *testing.T) {
	tests := []struct {
		mode vim.Mode
		want any
	}{
		{vim.ModeNormal, ModeNormalColor},
		{vim.ModeInsert, ModeInsertColor},
		{vim.ModeVisual, ModeVisualColor},
		{vim.ModeCommand, ModeCommandColor},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			style := ModeStyle(tt.mode)
			require.Equal(t, tt.want, style.GetBackground())
			require.True(t, style.GetBold())
		})
	}
}
