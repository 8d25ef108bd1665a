package upload_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jcarlounavas/gcashtrack/internal/parser"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
	"github.com/jcarlounavas/gcashtrack/internal/upload"
)

func TestService_Process_PlainText(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := statement.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateStatement(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *statement.Statement, records []statement.Record) error {
			assert.Equal(t, "0912345670", st.HomeAccount)
			assert.Equal(t, "january.txt", st.FileName)
			assert.Len(t, records, 2)

			return nil
		})

	svc := upload.NewService(parser.NewService(), statement.NewService(repo))

	text := "Payment to Meralco 9001001 1500.00\n" +
		"Refund from Lazada 9001002 430.00\n"

	st, sum, err := svc.Process(context.Background(), upload.Input{
		FileName:    "january.txt",
		Data:        []byte(text),
		HomeAccount: "0912345670",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, st.RecordCount)
	assert.Equal(t, "1500", sum.TotalDebit.String())
	assert.Equal(t, "430", sum.TotalCredit.String())
}

func TestService_Process_EmptyFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := statement.NewMockRepository(ctrl)

	svc := upload.NewService(parser.NewService(), statement.NewService(repo))

	_, _, err := svc.Process(context.Background(), upload.Input{
		FileName:    "empty.txt",
		Data:        nil,
		HomeAccount: "0912345670",
	})
	assert.ErrorIs(t, err, upload.ErrEmptyFile)
}

func TestService_Process_MalformedPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := statement.NewMockRepository(ctrl)

	svc := upload.NewService(parser.NewService(), statement.NewService(repo))

	_, _, err := svc.Process(context.Background(), upload.Input{
		FileName:    "broken.pdf",
		Data:        []byte("%PDF-1.7\ngarbage"),
		HomeAccount: "0912345670",
	})
	assert.Error(t, err)
}
