package export_reservations

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonReservations/internal/domain"
)

// UseCase use case выгрузки бронирований в xlsx
type UseCase struct {
	repo         ReservationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute формирует xlsx с бронированиями за период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExportReservations: validation failed: %v", err)
		return nil, err
	}

	filter := domain.ReservationFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		filter.Status = &status
	}

	reservations, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("ExportReservations: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	period := periodLabel(req)
	f, err := buildWorkbook(reservations, period)
	if err != nil {
		uc.logger.Error("ExportReservations: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: build workbook: %v", ErrInternal, err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		uc.logger.Error("ExportReservations: failed to write workbook: %v", err)
		return nil, fmt.Errorf("%w: write workbook: %v", ErrInternal, err)
	}

	fileName := fmt.Sprintf("reservations_%s_%s.xlsx", period, uc.timeProvider.Now().Format("20060102-150405"))
	uc.logger.Info("ExportReservations: exported %d reservations, period=%s", len(reservations), period)

	return &Response{
		FileName: fileName,
		Content:  buf.Bytes(),
		Count:    len(reservations),
	}, nil
}

// periodLabel подпись периода для имени файла и листа Summary
func periodLabel(req *Request) string {
	start, end := "begin", "end"
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if req.StartDate == nil && req.EndDate == nil {
		return "all"
	}
	return start + "_" + end
}
