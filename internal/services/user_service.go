package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kamranshamim45/ai-job-portal/internal/config"
	"github.com/kamranshamim45/ai-job-portal/internal/logger"
	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/repositories"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"
	"github.com/kamranshamim45/ai-job-portal/internal/storage"
	"github.com/kamranshamim45/ai-job-portal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UploadFunc is the shared shape of the profile upload operations.
type UploadFunc func(ctx context.Context, userID, fileName, contentType string, size int64, reader io.Reader) (*dto.UploadResponse, error)

// UserService serves profile reads and writes, including resume and photo
// uploads.
type UserService struct {
	userRepo  repositories.UserRepository
	storage   storage.Storage
	uploadCfg config.Config
}

func NewUserService(userRepo repositories.UserRepository, store storage.Storage, cfg *config.Config) *UserService {
	return &UserService{userRepo: userRepo, storage: store, uploadCfg: *cfg}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	resp := dto.NewProfileResponse(user)
	return &resp, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Skills != nil {
		user.Skills = pq.StringArray(req.Skills)
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}

	if user.Role == models.UserRoleRecruiter {
		if req.CompanyName != nil {
			user.CompanyName = *req.CompanyName
		}
		if req.IndustryType != nil {
			user.IndustryType = *req.IndustryType
		}
		if req.CompanyWebsite != nil {
			user.CompanyWebsite = *req.CompanyWebsite
		}
		if req.CompanySize != nil {
			user.CompanySize = *req.CompanySize
		}
		if req.Headquarters != nil {
			user.Headquarters = *req.Headquarters
		}
		if req.AboutCompany != nil {
			user.AboutCompany = *req.AboutCompany
		}
		if req.ContactEmail != nil {
			user.ContactEmail = *req.ContactEmail
		}
		if req.ContactPhone != nil {
			user.ContactPhone = *req.ContactPhone
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.StoreError(err)
	}

	resp := dto.NewProfileResponse(user)
	return &resp, nil
}

// UploadResume stores the candidate's resume and records it on the profile.
// Applications submitted before the upload keep their snapshot.
func (s *UserService) UploadResume(ctx context.Context, userID, fileName, contentType string, size int64, reader io.Reader) (*dto.UploadResponse, error) {
	if err := s.checkUpload(size, contentType, s.uploadCfg.Upload.AllowedResumeTypes); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	path := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), sanitizeExt(fileName))
	url, err := s.storage.Save(ctx, path, reader, contentType)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "storage")
	}

	user.ResumeURL = url
	user.ResumeFileName = fileName
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "resume uploaded", "user_id", userID, "file", fileName)

	return &dto.UploadResponse{URL: url, FileName: fileName}, nil
}

// UploadPhoto stores a profile picture for candidates or a company logo for
// recruiters.
func (s *UserService) UploadPhoto(ctx context.Context, userID, fileName, contentType string, size int64, reader io.Reader) (*dto.UploadResponse, error) {
	if err := s.checkUpload(size, contentType, s.uploadCfg.Upload.AllowedImageTypes); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	path := fmt.Sprintf("photos/%s/%s%s", userID, uuid.NewString(), sanitizeExt(fileName))
	url, err := s.storage.Save(ctx, path, reader, contentType)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "storage")
	}

	if user.Role == models.UserRoleRecruiter {
		user.CompanyLogo = url
	} else {
		user.ProfilePic = url
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.StoreError(err)
	}

	return &dto.UploadResponse{URL: url, FileName: fileName}, nil
}

func (s *UserService) checkUpload(size int64, contentType string, allowed []string) error {
	if size > s.uploadCfg.Upload.MaxSize {
		return apperrors.ErrFileTooLarge
	}
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

func sanitizeExt(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) > 10 {
		return ""
	}
	return ext
}
