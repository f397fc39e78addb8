package certificate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/repository/memory"
)

func TestNormalizeIssueDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2023-08-15", want: "2023-08-15"},
		{in: "2023-08", want: "2023-08-01"},
		{in: "2021", want: "2021-01-01"},
		{in: "2024-02-03T10:00:00Z", want: "2024-02-03"},
		{in: "last spring", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeIssueDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaveAndList(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.NewCertificateRepository(), nil)

	_, err := uc.Save(ctx, &domain.Certificate{Title: "CKA"})
	require.Error(t, err)
	assert.Equal(t, "Missing required fields: issuer, issue_date", err.Error())

	res, err := uc.Save(ctx, &domain.Certificate{ID: "c1", Title: "AWS SA", Issuer: "Amazon", IssueDate: "2023-08", IsPublished: true})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "2023-08-01", res.Record.IssueDate)

	again, err := uc.Save(ctx, &domain.Certificate{ID: res.Record.ID, Title: "AWS SA Pro", Issuer: "Amazon", IssueDate: "2023-08-01", IsPublished: true})
	require.NoError(t, err)
	assert.False(t, again.Created)

	certs, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "AWS SA Pro", certs[0].Title)
}
