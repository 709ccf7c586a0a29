package workingtime

import (
	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/utils"
	web "alyf.de/workingtime/web/common"
	"alyf.de/workingtime/workingtime/model"
)

type TimeLogDTO struct {
	FromTime  *web.LocalDateTime `json:"fromTime"`
	ToTime    *web.LocalDateTime `json:"toTime"`
	IsBreak   bool               `json:"isBreak"`
	ProjectID *int32             `json:"projectId"`
	Billable  string             `json:"billable"`
	Note      string             `json:"note"`
	IssueKey  string             `json:"issueKey"`
}

type WorkingTimeDTO struct {
	EmployeeID int32         `json:"employeeId" binding:"required"`
	Date       *web.DateOnly `json:"date" binding:"required"`
	Logs       []TimeLogDTO  `json:"logs"`
}

func (dto *WorkingTimeDTO) ToModel() *model.WorkingTime {
	doc := &model.WorkingTime{
		EmployeeID: dto.EmployeeID,
		Date:       dto.Date.Time,
	}

	for _, l := range dto.Logs {
		log := model.TimeLog{
			IsBreak:   l.IsBreak,
			ProjectID: l.ProjectID,
			Billable:  l.Billable,
			Note:      l.Note,
			IssueKey:  l.IssueKey,
		}
		if l.FromTime != nil && !l.FromTime.IsZero() {
			log.FromTime = utils.Ptr(l.FromTime.Time)
		}
		if l.ToTime != nil && !l.ToTime.IsZero() {
			log.ToTime = utils.Ptr(l.ToTime.Time)
		}
		doc.Logs = append(doc.Logs, log)
	}

	return doc
}

type TimeLogResponse struct {
	FromTime  *web.LocalDateTime `json:"fromTime,omitempty"`
	ToTime    *web.LocalDateTime `json:"toTime,omitempty"`
	Duration  int64              `json:"duration"`
	IsBreak   bool               `json:"isBreak"`
	ProjectID *int32             `json:"projectId,omitempty"`
	Billable  string             `json:"billable"`
	Note      string             `json:"note,omitempty"`
	IssueKey  string             `json:"issueKey,omitempty"`
}

type WorkingTimeResponse struct {
	ID          int32             `json:"id"`
	Name        string            `json:"name"`
	EmployeeID  int32             `json:"employeeId"`
	Date        web.DateOnly      `json:"date"`
	BreakTime   int64             `json:"breakTime"`
	WorkingTime int64             `json:"workingTime"`
	DocStatus   models.DocStatus  `json:"docstatus"`
	Logs        []TimeLogResponse `json:"logs"`
}

func NewWorkingTimeResponse(doc *model.WorkingTime) WorkingTimeResponse {
	resp := WorkingTimeResponse{
		ID:          doc.ID,
		Name:        doc.Name,
		EmployeeID:  doc.EmployeeID,
		Date:        web.DateOnly{Time: doc.Date},
		BreakTime:   doc.BreakTime,
		WorkingTime: doc.WorkingTime,
		DocStatus:   doc.DocStatus,
		Logs:        make([]TimeLogResponse, 0, len(doc.Logs)),
	}

	for _, l := range doc.Logs {
		log := TimeLogResponse{
			Duration:  l.Duration,
			IsBreak:   l.IsBreak,
			ProjectID: l.ProjectID,
			Billable:  l.Billable,
			Note:      l.Note,
			IssueKey:  l.IssueKey,
		}
		if l.FromTime != nil {
			log.FromTime = &web.LocalDateTime{Time: *l.FromTime}
		}
		if l.ToTime != nil {
			log.ToTime = &web.LocalDateTime{Time: *l.ToTime}
		}
		resp.Logs = append(resp.Logs, log)
	}

	return resp
}
