package service

import (
	"fmt"

	"craftconnect_backend/internal/model"
	"craftconnect_backend/internal/util"
)

// JobStore is the persistence boundary for job postings. Implemented by
// repository.JobRepository; tests use an in-memory fake.
type JobStore interface {
	Create(job *model.JobPosting) error
	FindByID(id uint) (*model.JobPosting, error)
	FindOpen() ([]model.JobPosting, error)
	Update(job *model.JobPosting) error
}

type JobService struct {
	Store JobStore
}

func NewJobService(store JobStore) *JobService {
	return &JobService{Store: store}
}

type CreateJobRequest struct {
	TradeCategoryID uint     `json:"tradeCategoryId" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Budget          *float64 `json:"budget"`
	Location        string   `json:"location"`
}

func (s *JobService) CreateJob(clientID uint, req CreateJobRequest) (*model.JobPosting, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("%w: client is required", util.ErrInvalidInput)
	}

	job := &model.JobPosting{
		ClientID:        clientID,
		TradeCategoryID: req.TradeCategoryID,
		Title:           req.Title,
		Description:     req.Description,
		Budget:          req.Budget,
		Location:        req.Location,
		Status:          model.JobOpen,
	}
	if err := s.Store.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListOpenJobs() ([]model.JobPosting, error) {
	return s.Store.FindOpen()
}

// AssignJob lets an artisan accept an open job. Only the open state is
// assignable; anything else is rejected without mutation.
func (s *JobService) AssignJob(jobID, artisanID uint) (*model.JobPosting, error) {
	job, err := s.Store.FindByID(jobID)
	if err != nil {
		return nil, util.ErrJobNotFound
	}

	if job.Status != model.JobOpen {
		return nil, util.ErrJobNotOpen
	}

	job.AssignedArtisanID = &artisanID
	job.Status = model.JobAssigned

	if err := s.Store.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

// CompleteJob marks an assigned job done. Only the client who posted
// the job may complete it.
func (s *JobService) CompleteJob(jobID, clientID uint) (*model.JobPosting, error) {
	job, err := s.Store.FindByID(jobID)
	if err != nil {
		return nil, util.ErrJobNotFound
	}

	if job.ClientID != clientID {
		return nil, util.ErrPermissionDenied
	}

	job.Status = model.JobCompleted

	if err := s.Store.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}
