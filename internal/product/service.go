package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// Query loads the catalog and runs the filter/sort/paginate pipeline over it.
func (s *Service) Query(q Query) Result {
	return Run(s.repo.List(), q)
}

// Facets derives the filter panel options from the current catalog.
func (s *Service) Facets() Facets {
	return DeriveFacets(s.repo.List())
}

// Featured returns the top products by popularity for the home page rail.
func (s *Service) Featured(limit int) []Product {
	res := Run(s.repo.List(), Query{Sort: SortPopularity, Page: 1, PageSize: limit})
	return res.Items
}

func (s *Service) Suggest(term string, limit int) ([]Product, error) {
	return s.repo.Suggest(term, limit)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
