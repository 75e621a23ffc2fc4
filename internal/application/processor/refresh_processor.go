package processor

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"yatra-api/internal/domain/entity"
	"yatra-api/internal/domain/usecase/travel"
	"yatra-api/pkg/log"
)

type RefreshProcessor struct {
	travelUseCase travel.UseCase
}

func NewRefreshProcessor(travelUseCase travel.UseCase) *RefreshProcessor {
	return &RefreshProcessor{
		travelUseCase: travelUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RefreshProcessor) HandleMessage(msg types.Message) error {
	if msg.Body == nil {
		return fmt.Errorf("received message with nil body")
	}

	var city entity.City
	if err := json.Unmarshal([]byte(*msg.Body), &city); err != nil {
		return fmt.Errorf("failed to unmarshal refresh message body: %w", err)
	}

	if err := p.travelUseCase.RefreshCity(city.ID); err != nil {
		return fmt.Errorf("failed to refresh city %s: %w", city.Name, err)
	}

	log.Infof("Successfully refreshed derived records for city: %s", city.Name)
	return nil
}
