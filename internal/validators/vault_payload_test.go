package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-vault-adder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrString(s string) *string { return &s }

func validPayload() models.AddVaultPayload {
	return models.AddVaultPayload{
		RequestID:        "0190c3d2-0000-7000-8000-000000000001",
		CreateNew:        true,
		DatasourceConfig: models.NewFileDatasource("/home/user/vault1.bcup"),
		MasterPassword:   "Abcdefghijk1!xyz",
	}
}

func TestNewVaultPayloadValidator(t *testing.T) {
	require.NotNil(t, NewVaultPayloadValidator())
}

// ── Validate dispatch ─────────────────────────────────────────────────────────

func TestValidate_Dispatch(t *testing.T) {
	v := NewVaultPayloadValidator()
	ctx := context.Background()
	payload := validPayload()

	assert.NoError(t, v.Validate(ctx, payload))
	assert.NoError(t, v.Validate(ctx, &payload))
	assert.NoError(t, v.Validate(ctx, payload.DatasourceConfig))
	assert.NoError(t, v.Validate(ctx, &payload.DatasourceConfig))
	assert.ErrorIs(t, v.Validate(ctx, "payload"), ErrUnsupportedType)
}

// ── AddVaultPayload ───────────────────────────────────────────────────────────

func TestValidate_AddVaultPayload(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.AddVaultPayload)
		want   error
	}{
		{name: "valid", mutate: func(p *models.AddVaultPayload) {}},
		{name: "valid with override", mutate: func(p *models.AddVaultPayload) { p.FileNameOverride = ptrString("work.bcup") }},
		{name: "empty request id", mutate: func(p *models.AddVaultPayload) { p.RequestID = " " }, want: ErrInvalidRequestID},
		{name: "malformed request id", mutate: func(p *models.AddVaultPayload) { p.RequestID = "req-1" }, want: ErrInvalidRequestID},
		{name: "empty password", mutate: func(p *models.AddVaultPayload) { p.MasterPassword = "" }, want: ErrEmptyMasterPassword},
		{name: "empty override", mutate: func(p *models.AddVaultPayload) { p.FileNameOverride = ptrString("") }, want: ErrEmptyFileNameOverride},
		{
			name:   "missing datasource type",
			mutate: func(p *models.AddVaultPayload) { p.DatasourceConfig = models.DatasourceConfig{} },
			want:   ErrEmptyDatasourceType,
		},
		{
			name:   "unsupported datasource",
			mutate: func(p *models.AddVaultPayload) { p.DatasourceConfig = models.DatasourceConfig{Type: "dropbox"} },
			want:   ErrUnsupportedDatasource,
		},
		{
			name:   "file without path",
			mutate: func(p *models.AddVaultPayload) { p.DatasourceConfig = models.NewFileDatasource("") },
			want:   ErrEmptyDatasourcePath,
		},
	}

	v := NewVaultPayloadValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)
			err := v.Validate(context.Background(), p)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_AddVaultPayload_FieldScoping(t *testing.T) {
	v := NewVaultPayloadValidator()
	p := validPayload()
	p.MasterPassword = ""

	assert.NoError(t, v.Validate(context.Background(), p, FieldRequestID, FieldDatasource))
	assert.ErrorIs(t, v.Validate(context.Background(), p, FieldMasterPassword), ErrEmptyMasterPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), p, "bogus"), ErrUnknownField)
}
