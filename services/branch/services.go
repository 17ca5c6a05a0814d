package branch

import (
	"fmt"

	"barberdesk/models"
)

// UpsertService adds or replaces one service in the branch catalog, matched
// by name.
func (s *DefaultBranchService) UpsertService(branchID string, svc models.BranchService) (*models.Branch, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}

	b, err := s.GetBranchByID(branchID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range b.Services {
		if b.Services[i].Name == svc.Name {
			b.Services[i] = svc
			replaced = true
			break
		}
	}
	if !replaced {
		b.Services = append(b.Services, svc)
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// RemoveService drops one service from the branch catalog by name.
func (s *DefaultBranchService) RemoveService(branchID, serviceName string) (*models.Branch, error) {
	b, err := s.GetBranchByID(branchID)
	if err != nil {
		return nil, err
	}

	kept := b.Services[:0]
	found := false
	for _, svc := range b.Services {
		if svc.Name == serviceName {
			found = true
			continue
		}
		kept = append(kept, svc)
	}
	if !found {
		return nil, fmt.Errorf("service %q not found in branch %s", serviceName, branchID)
	}
	b.Services = kept

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}
