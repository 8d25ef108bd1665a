package statement

import (
	"time"

	"github.com/google/uuid"

	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

type statementResponse struct {
	ID          uuid.UUID `json:"id"`
	HomeAccount string    `json:"home_account"`
	FileName    string    `json:"file_name"`
	TotalDebit  string    `json:"total_debit"`
	TotalCredit string    `json:"total_credit"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type recordResponse struct {
	Description string `json:"description"`
	Debit       string `json:"debit,omitempty"`
	Credit      string `json:"credit,omitempty"`
	RefNo       string `json:"reference_no,omitempty"`
	TxDate      string `json:"tx_date,omitempty"`
	Sender      string `json:"sender,omitempty"`
	Receiver    string `json:"receiver,omitempty"`
}

type groupResponse struct {
	Key         string `json:"key"`
	Count       int    `json:"count"`
	TotalDebit  string `json:"total_debit"`
	TotalCredit string `json:"total_credit"`
}

func toResponse(st *statement.Statement) statementResponse {
	return statementResponse{
		ID:          st.ID,
		HomeAccount: st.HomeAccount,
		FileName:    st.FileName,
		TotalDebit:  st.TotalDebit.StringFixed(2),
		TotalCredit: st.TotalCredit.StringFixed(2),
		RecordCount: st.RecordCount,
		CreatedAt:   st.CreatedAt,
	}
}

func toResponseList(sts []*statement.Statement) []statementResponse {
	resp := make([]statementResponse, len(sts))
	for i, st := range sts {
		resp[i] = toResponse(st)
	}

	return resp
}

func toRecordResponse(rec statement.Record) recordResponse {
	resp := recordResponse{
		Description: rec.Description,
		RefNo:       rec.RefNo,
		TxDate:      rec.TxDate,
		Sender:      rec.Sender,
		Receiver:    rec.Receiver,
	}

	if !rec.Debit.IsZero() {
		resp.Debit = rec.Debit.StringFixed(2)
	}

	if !rec.Credit.IsZero() {
		resp.Credit = rec.Credit.StringFixed(2)
	}

	return resp
}

func toRecordList(records []statement.Record) []recordResponse {
	resp := make([]recordResponse, len(records))
	for i, rec := range records {
		resp[i] = toRecordResponse(rec)
	}

	return resp
}

func toGroupList(groups []statement.Group) []groupResponse {
	resp := make([]groupResponse, len(groups))
	for i, g := range groups {
		resp[i] = groupResponse{
			Key:         g.Key,
			Count:       g.Count,
			TotalDebit:  g.TotalDebit.StringFixed(2),
			TotalCredit: g.TotalCredit.StringFixed(2),
		}
	}

	return resp
}
