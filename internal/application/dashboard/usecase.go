// Package dashboard orquesta el ciclo carga → filtro → agregación → presentación
// y las exportaciones de la vista filtrada.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/application/dataset"
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
	FormatXML = "xml"

	exportBaseName = "filtered_inventory"
	reportTitle    = "Inventario de Productos Filtrado"
)

var (
	ratingFloor   = decimal.Zero
	ratingCeiling = decimal.NewFromInt(5)
)

// UseCase casos de uso del dashboard de inventario.
type UseCase struct {
	cache  *dataset.Cache
	source repository.InventorySource
	pdf    ReportPDFGenerator
	sheet  SpreadsheetWriter
	log    zerolog.Logger
	now    func() time.Time
}

// NewUseCase construye el caso de uso. pdf y sheet pueden ser nil: ese formato queda deshabilitado.
func NewUseCase(
	cache *dataset.Cache,
	source repository.InventorySource,
	pdf ReportPDFGenerator,
	sheet SpreadsheetWriter,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{cache: cache, source: source, pdf: pdf, sheet: sheet, log: log, now: time.Now}
}

// Dataset devuelve el dataset cacheado (lo carga la primera vez).
func (uc *UseCase) Dataset(ctx context.Context) (*entity.Dataset, error) {
	return uc.cache.Get(ctx, uc.source)
}

// Options devuelve las categorías disponibles y el filtro por defecto.
func (uc *UseCase) Options(ctx context.Context) (*dto.FilterOptionsDTO, error) {
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	categories := ds.Categories()
	return &dto.FilterOptionsDTO{
		DatasetID:  ds.ID(),
		LoadedAt:   ds.LoadedAt(),
		Categories: nonNil(categories),
		Defaults:   PresentFilter(DefaultCriteria(ds), categories),
	}, nil
}

// Build ejecuta un ciclo completo para el filtro indicado.
// Si la vista filtrada queda vacía devuelve NoData=true sin calcular agregados.
func (uc *UseCase) Build(ctx context.Context, req dto.FilterRequest) (*dto.DashboardDTO, error) {
	ds, criteria, view, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	filter := PresentFilter(criteria, ds.Categories())

	if len(view) == 0 {
		uc.log.Debug().Strs("categories", filter.Categories).Msg("filtro sin resultados")
		return &dto.DashboardDTO{
			DatasetID: ds.ID(),
			LoadedAt:  ds.LoadedAt(),
			Filter:    filter,
			NoData:    true,
			Message:   domain.ErrNoData.Error(),
		}, nil
	}
	return PresentDashboard(ds, filter, view), nil
}

// Export genera el archivo descargable de la vista filtrada en el formato pedido.
func (uc *UseCase) Export(ctx context.Context, req dto.FilterRequest, format string) (*dto.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	switch {
	case format == FormatPDF && uc.pdf == nil, format == FormatXML && uc.sheet == nil:
		return nil, fmt.Errorf("exportar: formato %q deshabilitado: %w", format, domain.ErrInvalidInput)
	case format != FormatCSV && format != FormatPDF && format != FormatXML:
		return nil, fmt.Errorf("exportar: formato %q no soportado: %w", format, domain.ErrInvalidInput)
	}

	ds, criteria, view, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(view) == 0 {
		return nil, domain.ErrNoData
	}

	report := ExportReport{
		Title:       reportTitle,
		GeneratedAt: uc.now(),
		Filter:      PresentFilter(criteria, ds.Categories()),
		Metrics:     PresentMetrics(view),
		Columns:     TableColumns,
		Rows:        PresentRows(view),
	}

	var (
		content     []byte
		contentType string
	)
	switch format {
	case FormatPDF:
		content, err = uc.pdf.GenerateInventoryPDF(ctx, report)
		contentType = "application/pdf"
	case FormatXML:
		content, err = uc.sheet.WriteSpreadsheet(ctx, report)
		contentType = "application/vnd.ms-excel"
	default:
		content, err = EncodeCSV(report.Rows)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}

	uc.log.Info().Str("format", format).Int("rows", len(report.Rows)).Msg("exportación generada")
	return &dto.ExportFile{
		FileName:    exportBaseName + "." + format,
		ContentType: contentType,
		Content:     content,
	}, nil
}

// Reload invalida el dataset de la fuente y lo vuelve a cargar.
func (uc *UseCase) Reload(ctx context.Context) (*dto.ReloadDTO, error) {
	uc.cache.Invalidate(uc.source.Identity())
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReloadDTO{
		DatasetID: ds.ID(),
		Source:    ds.Source(),
		Records:   ds.Len(),
		LoadedAt:  ds.LoadedAt(),
	}, nil
}

// DefaultCriteria todas las categorías, precio 0..máximo, rating 0..5.
func DefaultCriteria(ds *entity.Dataset) entity.FilterCriteria {
	return entity.FilterCriteria{
		Categories: entity.NewCategorySet(ds.Categories()...),
		PriceMin:   decimal.Zero,
		PriceMax:   ds.MaxPrice(),
		RatingMin:  ratingFloor,
		RatingMax:  ratingCeiling,
	}
}

// Criteria combina el request con los valores por defecto del dataset.
func Criteria(ds *entity.Dataset, req dto.FilterRequest) (entity.FilterCriteria, error) {
	if err := ValidateFilter(req); err != nil {
		return entity.FilterCriteria{}, err
	}
	c := DefaultCriteria(ds)
	if req.CategoriesSet {
		c.Categories = entity.NewCategorySet(req.Categories...)
	}
	if req.PriceMin != nil {
		c.PriceMin = decimal.NewFromFloat(*req.PriceMin)
	}
	if req.PriceMax != nil {
		c.PriceMax = decimal.NewFromFloat(*req.PriceMax)
	}
	if req.RatingMin != nil {
		c.RatingMin = decimal.NewFromFloat(*req.RatingMin)
	}
	if req.RatingMax != nil {
		c.RatingMax = decimal.NewFromFloat(*req.RatingMax)
	}
	return c, nil
}

func (uc *UseCase) filtered(ctx context.Context, req dto.FilterRequest) (*entity.Dataset, entity.FilterCriteria, []entity.Record, error) {
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, entity.FilterCriteria{}, nil, err
	}
	criteria, err := Criteria(ds, req)
	if err != nil {
		return nil, entity.FilterCriteria{}, nil, err
	}
	return ds, criteria, inventory.Filter(ds, criteria), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
