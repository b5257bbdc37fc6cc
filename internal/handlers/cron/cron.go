package cron

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/costeo/internal/dto"
	"github.com/GlebRadaev/costeo/internal/service/scanservice"
	"github.com/GlebRadaev/costeo/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cron.go -destination=mock_cron.go -package=cron

type Service interface {
	Run(ctx context.Context, now time.Time) (*scanservice.Report, error)
}

type CronHandler struct {
	scanService Service
	now         func() time.Time
}

func New(scanService Service) *CronHandler {
	return &CronHandler{
		scanService: scanService,
		now:         time.Now,
	}
}

// Scan godoc
//
//	@Summary		Run the threshold scan
//	@Description	Checks every notification threshold once and reports per type how many entities matched and how many notifications were sent.
//	@Tags			Cron
//	@Security		CronSecret
//	@Produce		json
//	@Success		200	{object}	dto.ScanResponseDTO	"Scan report"
//	@Failure		401	{object}	utils.Response		"Missing or wrong cron secret"
//	@Failure		500	{object}	utils.Response		"Scan could not run"
//	@Router			/api/cron/scan [post]
func (h *CronHandler) Scan(w http.ResponseWriter, r *http.Request) {
	report, err := h.scanService.Run(r.Context(), h.now())
	if err != nil {
		zap.L().Error("threshold scan failed", zap.Error(err))
		utils.RespondWithErrorDetails(w, http.StatusInternalServerError, "scan failed", err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ReportDTO(report))
}

// ReportDTO is shared with the operator CLI.
func ReportDTO(report *scanservice.Report) dto.ScanResponseDTO {
	resp := dto.ScanResponseDTO{
		OK:        true,
		Timestamp: report.Timestamp,
		Results:   make([]dto.ThresholdResultDTO, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		item := dto.ThresholdResultDTO{
			Event:   res.Event,
			Found:   res.Found,
			Sent:    res.Sent,
			Skipped: res.Skipped,
			Errors:  res.Errors,
		}
		if item.Errors == nil {
			item.Errors = []string{}
		}
		if res.TargetDate != nil {
			date := res.TargetDate.Format("2006-01-02")
			item.TargetDate = &date
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}
