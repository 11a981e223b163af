package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"psicocitas/config"
	"psicocitas/models"
	"psicocitas/utils"
)

// Column headers of the booking tab, in append order.
var sheetColumns = []string{
	"Fecha", "Acudiente", "Paciente", "Edad", "Correo", "Telefono", "Modalidad", "Mensaje",
}

// Recorder appends a booking to the system of record.
type Recorder interface {
	Record(ctx context.Context, sub models.BookingSubmission) error
}

// sheetsAPI is the narrow slice of the Sheets client the recorder needs.
type sheetsAPI interface {
	TabTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	AppendRow(ctx context.Context, spreadsheetID, tab string, row []interface{}) error
}

// SheetsRecorder records bookings into a tab of a Google spreadsheet,
// authenticated with a service account.
type SheetsRecorder struct {
	Cfg *config.Config

	api sheetsAPI
	now func() time.Time
}

func NewSheetsRecorder(cfg *config.Config) *SheetsRecorder {
	return &SheetsRecorder{Cfg: cfg, now: time.Now}
}

// Record appends one row for the submission. Config must be complete before
// any auth is attempted; all failures here are fatal to the submission.
func (r *SheetsRecorder) Record(ctx context.Context, sub models.BookingSubmission) error {
	cfg := r.Cfg
	if cfg.GoogleSheetID == "" || cfg.GoogleServiceAccountEmail == "" || cfg.GooglePrivateKey == "" {
		return ErrSheetConfigMissing
	}

	timeout := time.Duration(cfg.OutboundTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	api := r.api
	if api == nil {
		var err error
		api, err = newGoogleSheetsAPI(ctx, cfg.GoogleServiceAccountEmail, unescapePrivateKey(cfg.GooglePrivateKey))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRecordFailed, err)
		}
	}

	titles, err := api.TabTitles(ctx, cfg.GoogleSheetID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRecordFailed, err)
	}

	tab, err := resolveTab(titles, cfg.GoogleSheetBookingTab, cfg.GoogleSheetTab)
	if err != nil {
		return err
	}

	if err := api.AppendRow(ctx, cfg.GoogleSheetID, tab, r.rowValues(sub)); err != nil {
		return fmt.Errorf("%w: %v", ErrRecordFailed, err)
	}

	utils.GetLogger().Info("Booking recorded",
		zap.String("tab", tab),
		zap.String("patient", sub.PatientName),
	)
	return nil
}

// rowValues flattens the submission into the fixed column order. The
// timestamp column is the moment of append.
func (r *SheetsRecorder) rowValues(sub models.BookingSubmission) []interface{} {
	return []interface{}{
		r.now().UTC().Format(time.RFC3339),
		sub.GuardianName,
		sub.PatientName,
		sub.PatientAge,
		sub.Email,
		sub.Phone,
		sub.SessionType,
		sub.Message,
	}
}

// resolveTab picks the target tab via an ordered list of lookups: first
// configured name wins, then the first tab by position. A configured name
// that names no existing tab is an error, not a fallthrough.
func resolveTab(titles []string, names ...string) (string, error) {
	lookups := make([]func() (string, bool), 0, len(names)+1)
	for _, name := range names {
		name := name
		lookups = append(lookups, func() (string, bool) { return name, name != "" })
	}
	lookups = append(lookups, func() (string, bool) {
		if len(titles) > 0 {
			return titles[0], true
		}
		return "", false
	})

	for _, lookup := range lookups {
		name, ok := lookup()
		if !ok {
			continue
		}
		for _, title := range titles {
			if title == name {
				return name, nil
			}
		}
		return "", ErrTabNotFound
	}
	return "", ErrTabNotFound
}

// unescapePrivateKey restores literal newlines in a key stored on a single
// configuration line.
func unescapePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// googleSheetsAPI is the production sheetsAPI backed by the Sheets client.
type googleSheetsAPI struct {
	svc *sheets.Service
}

func newGoogleSheetsAPI(ctx context.Context, serviceEmail, privateKey string) (*googleSheetsAPI, error) {
	conf := &jwt.Config{
		Email:      serviceEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, err
	}
	return &googleSheetsAPI{svc: svc}, nil
}

func (g *googleSheetsAPI) TabTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	doc, err := g.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(doc.Sheets))
	for _, sh := range doc.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (g *googleSheetsAPI) AppendRow(ctx context.Context, spreadsheetID, tab string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := g.svc.Spreadsheets.Values.
		Append(spreadsheetID, fmt.Sprintf("'%s'!A1", tab), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}
