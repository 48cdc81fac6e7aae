package service

import (
	"context"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/pkg/cms"
	"mindwell-be/pkg/hotline"
	"mindwell-be/pkg/utils"
)

type IHotlineService interface {
	List(ctx context.Context, country string) (*dto.ListHotlinesResponse, error)
	CrisisFallback() []dto.HotlineResponse
}

type hotlineService struct {
	directory *hotline.Directory
}

func NewHotlineService(directory *hotline.Directory) IHotlineService {
	return &hotlineService{
		directory: directory,
	}
}

// LoadDirectory builds the hotline directory, overlaying any editor-managed
// entries from the CMS on top of the built-in table. The CMS being down must
// never cost us the directory, so errors degrade to the built-in data.
func LoadDirectory(ctx context.Context, cmsClient *cms.Client, log logger.ILogger) *hotline.Directory {
	if cmsClient == nil {
		return hotline.NewDirectory()
	}

	hotlines, err := cmsClient.FetchHotlines(ctx)
	if err != nil {
		log.Warn("HotlineService", "CMS hotline fetch failed, using built-in table", map[string]interface{}{
			"error": err.Error(),
		})
		return hotline.NewDirectory()
	}

	overlay := make([]hotline.Entry, 0, len(hotlines))
	for _, h := range hotlines {
		overlay = append(overlay, hotline.Entry{
			Key:     utils.Slugify(h.Country),
			Country: h.Country,
			Crisis:  h.Number,
			Service: h.Name,
		})
	}

	log.Info("HotlineService", "Hotline directory loaded", map[string]interface{}{
		"overlay_entries": len(overlay),
	})
	return hotline.NewDirectoryWithOverlay(overlay)
}

func (s *hotlineService) List(_ context.Context, country string) (*dto.ListHotlinesResponse, error) {
	entries := s.directory.FindByCountry(country)
	return &dto.ListHotlinesResponse{
		Hotlines: toHotlineResponses(entries),
	}, nil
}

func (s *hotlineService) CrisisFallback() []dto.HotlineResponse {
	return toHotlineResponses(hotline.Fallback())
}

func toHotlineResponses(entries []hotline.Entry) []dto.HotlineResponse {
	out := make([]dto.HotlineResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HotlineResponse{
			Key:         e.Key,
			Country:     e.Country,
			Emergency:   e.Emergency,
			Crisis:      e.Crisis,
			Service:     e.Service,
			ReferralUrl: e.ReferralURL,
		})
	}
	return out
}
