package banner

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to limit banners, never an error.
func (s *Service) List(limit int) []Banner {
	items, err := s.repo.List(limit)
	if err != nil {
		return []Banner{}
	}
	return items
}
