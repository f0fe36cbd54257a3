package service

import (
	"context"

	"github.com/MKhiriev/go-vault-adder/models"
)

type vaultFlowService struct {
	prompt   VaultPromptService
	addition VaultAdditionService
}

func NewVaultFlowService(prompt VaultPromptService, addition VaultAdditionService) VaultFlowService {
	return &vaultFlowService{prompt: prompt, addition: addition}
}

func (s *vaultFlowService) AddFileVault(ctx context.Context, password string) (models.VaultSourceID, error) {
	target, err := s.prompt.ResolveVaultTarget(ctx)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", nil
	}

	return s.addition.AddVaultTarget(ctx, models.NewFileDatasource(target.Filename), password, target.CreateNew, nil)
}
