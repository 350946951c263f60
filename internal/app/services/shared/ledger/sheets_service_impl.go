package ledger

import (
	"context"
	"donaciones-service/internal/app/config"
	"donaciones-service/internal/app/contracts"
	"donaciones-service/internal/app/models"
	"donaciones-service/internal/pkg/constvars"
	"donaciones-service/internal/pkg/exceptions"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type sheetsLedgerService struct {
	SpreadsheetID string
	WriteRange    string
	Log           *zap.Logger

	service *sheets.Service
}

// NewSheetsLedgerService authenticates against the spreadsheet store with the
// service-account credential. Missing credentials are a configuration fault,
// reported at construction rather than on the first webhook.
func NewSheetsLedgerService(ctx context.Context, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.LedgerSink, error) {
	cfg := internalConfig.GoogleSheets
	if cfg.ServiceAccountEmail == "" || cfg.PrivateKey == "" || cfg.SpreadsheetID == "" {
		return nil, errors.New("ledger: incomplete Google Sheets credentials")
	}

	// Keys arrive through the environment with escaped newlines.
	privateKey := strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")

	jwtConfig := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, err
	}

	return &sheetsLedgerService{
		SpreadsheetID: cfg.SpreadsheetID,
		WriteRange:    cfg.WriteRange,
		Log:           logger,
		service:       service,
	}, nil
}

func newSheetsLedgerServiceWithService(service *sheets.Service, spreadsheetID, writeRange string, logger *zap.Logger) contracts.LedgerSink {
	return &sheetsLedgerService{
		SpreadsheetID: spreadsheetID,
		WriteRange:    writeRange,
		Log:           logger,
		service:       service,
	}
}

// Append adds one row to the named range. No uniqueness check, no upsert:
// redelivered events append again. The sheet itself orders concurrent
// appends; this service never reads it back.
func (s *sheetsLedgerService) Append(ctx context.Context, row *models.LedgerRow) error {
	s.Log.Info("sheetsLedgerService.Append called",
		zap.String(constvars.LoggingSpreadsheetKey, s.SpreadsheetID),
		zap.String(constvars.LoggingCategoryKey, row.Category),
	)

	columns := row.Columns()
	values := make([]interface{}, len(columns))
	for i, column := range columns {
		values[i] = column
	}

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{values},
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.SpreadsheetID, s.WriteRange, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		s.Log.Error("sheetsLedgerService.Append failed",
			zap.String(constvars.LoggingSpreadsheetKey, s.SpreadsheetID),
			zap.Error(err),
		)
		return exceptions.ErrLedgerAppend(err)
	}

	s.Log.Info("sheetsLedgerService.Append succeeded",
		zap.String(constvars.LoggingCategoryKey, row.Category),
	)
	return nil
}
