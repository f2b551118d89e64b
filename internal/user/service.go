package user

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(user User) (User, error) {
	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user.Password = string(hashed)
	user.Role = RoleCustomer
	return s.repo.Create(user)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateProfile overwrites the profile fields a user may edit themselves.
// Email, password and role are untouched.
func (s *Service) UpdateProfile(id int, fullName, phone string, avatarURL *string, updatedAt string) (User, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	current.FullName = fullName
	current.Phone = phone
	current.AvatarURL = avatarURL
	current.UpdatedAt = updatedAt
	return s.repo.Update(id, current)
}

// SetRole changes a user's role (admin panel user management).
func (s *Service) SetRole(id int, role string) (User, error) {
	if role != RoleCustomer && role != RoleAdmin {
		return User{}, ErrNotFound
	}
	current, err := s.repo.GetByID(id)
	if err != nil {
		return User{}, err
	}
	current.Role = role
	return s.repo.Update(id, current)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
