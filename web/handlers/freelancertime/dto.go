package freelancertime

import (
	"alyf.de/workingtime/core/models"
	"alyf.de/workingtime/utils"
	web "alyf.de/workingtime/web/common"
	"alyf.de/workingtime/workingtime/model"
)

type FreelancerLogDTO struct {
	Date      *web.DateOnly `json:"date" binding:"required"`
	Duration  int64         `json:"duration" binding:"required,min=1"`
	ProjectID *int32        `json:"projectId"`
	Note      string        `json:"note"`
	IssueKey  string        `json:"issueKey"`
}

type FreelancerTimeDTO struct {
	// User defaults to the authenticated login when omitted.
	User string             `json:"user"`
	Logs []FreelancerLogDTO `json:"logs" binding:"required,min=1,dive"`
}

func (dto *FreelancerTimeDTO) ToModel() *model.FreelancerTime {
	doc := &model.FreelancerTime{
		User: dto.User,
	}

	for _, l := range dto.Logs {
		doc.Logs = append(doc.Logs, model.TimeLog{
			Date:      utils.Ptr(l.Date.Time),
			Duration:  l.Duration,
			ProjectID: l.ProjectID,
			Note:      l.Note,
			IssueKey:  l.IssueKey,
		})
	}

	return doc
}

type FreelancerLogResponse struct {
	Date      web.DateOnly `json:"date"`
	Duration  int64        `json:"duration"`
	ProjectID *int32       `json:"projectId,omitempty"`
	Note      string       `json:"note,omitempty"`
	IssueKey  string       `json:"issueKey,omitempty"`
}

type FreelancerTimeResponse struct {
	ID        int32                   `json:"id"`
	Name      string                  `json:"name"`
	User      string                  `json:"user"`
	DocStatus models.DocStatus        `json:"docstatus"`
	Logs      []FreelancerLogResponse `json:"logs"`
}

func NewFreelancerTimeResponse(doc *model.FreelancerTime) FreelancerTimeResponse {
	resp := FreelancerTimeResponse{
		ID:        doc.ID,
		Name:      doc.Name,
		User:      doc.User,
		DocStatus: doc.DocStatus,
		Logs:      make([]FreelancerLogResponse, 0, len(doc.Logs)),
	}

	for _, l := range doc.Logs {
		log := FreelancerLogResponse{
			Duration:  l.Duration,
			ProjectID: l.ProjectID,
			Note:      l.Note,
			IssueKey:  l.IssueKey,
		}
		if l.Date != nil {
			log.Date = web.DateOnly{Time: *l.Date}
		}
		resp.Logs = append(resp.Logs, log)
	}

	return resp
}
