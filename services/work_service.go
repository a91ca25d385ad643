package services

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"soc-archive-api/models"
	"soc-archive-api/repositories"
	"soc-archive-api/storage"

	"gorm.io/gorm"
)

type WorkService interface {
	CreateWork(req models.CreateWorkRequest) (*models.Work, error)
	GetWork(id uint) (*models.Work, error)
	ListWorks(params models.WorkListParams) ([]models.Work, error)
	ApproveWork(id uint) error
	AttachPDF(id uint, file *multipart.FileHeader) error
	OpenPDF(id uint) (*os.File, string, error)
	AnonymizeWork(id uint) error
	ExportWorks() ([]models.Work, error)
}

type workService struct {
	workRepo      repositories.WorkRepository
	fileStore     *storage.FileStore
	maxUploadSize int64
}

func NewWorkService(workRepo repositories.WorkRepository, fileStore *storage.FileStore, maxUploadSize int64) WorkService {
	return &workService{
		workRepo:      workRepo,
		fileStore:     fileStore,
		maxUploadSize: maxUploadSize,
	}
}

func (s *workService) CreateWork(req models.CreateWorkRequest) (*models.Work, error) {
	work := &models.Work{
		Title:       req.Title,
		Abstract:    req.Abstract,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Year:        req.Year,
		Field:       req.Field,
		School:      req.School,
		Region:      req.Region,
		Category:    req.Category,
		GDPRConsent: req.GDPRConsent,
		Approved:    false,
	}

	if err := s.workRepo.Create(work); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to create work: " + err.Error()}
	}

	return work, nil
}

func (s *workService) GetWork(id uint) (*models.Work, error) {
	work, err := s.workRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "work not found"}
		}
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return work, nil
}

func (s *workService) ListWorks(params models.WorkListParams) ([]models.Work, error) {
	works, err := s.workRepo.GetList(params)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return works, nil
}

// ApproveWork marks a work approved. Approving an already approved work is
// a no-op success.
func (s *workService) ApproveWork(id uint) error {
	if _, err := s.GetWork(id); err != nil {
		return err
	}

	if err := s.workRepo.SetApproved(id); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}

	return nil
}

// AttachPDF validates the upload, stores the bytes under a name derived
// from the work id and records that name on the work. A prior attachment
// reference is overwritten; its file stays on disk.
func (s *workService) AttachPDF(id uint, file *multipart.FileHeader) error {
	if _, err := s.GetWork(id); err != nil {
		return err
	}

	if file == nil {
		return models.ErrorInvalidFile{Message: "no PDF file provided"}
	}

	if file.Filename == "" {
		return models.ErrorInvalidFile{Message: "no file selected"}
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return models.ErrorInvalidFile{Message: "invalid file type, only PDF is allowed"}
	}

	if s.maxUploadSize > 0 && file.Size > s.maxUploadSize {
		return models.ErrorInvalidFile{Message: "file exceeds maximum upload size"}
	}

	src, err := file.Open()
	if err != nil {
		return models.ErrorInvalidFile{Message: "failed to read uploaded file"}
	}
	defer src.Close()

	storageName := s.fileStore.StorageName(id, file.Filename)
	if err := s.fileStore.Save(storageName, src); err != nil {
		return models.ErrorInternalServer{Message: "failed to store PDF: " + err.Error()}
	}

	if err := s.workRepo.SetPDFFilename(id, storageName); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}

	return nil
}

// OpenPDF returns a stream over the work's attachment together with the
// stored filename. The caller must close the stream.
func (s *workService) OpenPDF(id uint) (*os.File, string, error) {
	work, err := s.GetWork(id)
	if err != nil {
		return nil, "", err
	}

	if !work.HasPDF() {
		return nil, "", models.ErrorNotFound{Message: "PDF not available"}
	}

	f, err := s.fileStore.Open(*work.PDFFilename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", models.ErrorNotFound{Message: "PDF not available"}
		}
		return nil, "", models.ErrorInternalServer{Message: err.Error()}
	}

	return f, *work.PDFFilename, nil
}

// AnonymizeWork removes personal data from a work: the author name becomes
// the fixed marker and the author email is cleared. The operation is
// one-way and idempotent; the record itself and any attached PDF remain.
func (s *workService) AnonymizeWork(id uint) error {
	if _, err := s.GetWork(id); err != nil {
		return err
	}

	if err := s.workRepo.Anonymize(id); err != nil {
		return models.ErrorInternalServer{Message: err.Error()}
	}

	return nil
}

func (s *workService) ExportWorks() ([]models.Work, error) {
	works, err := s.workRepo.GetAll()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: err.Error()}
	}

	return works, nil
}
