// Package memory implementa repository.Storage en memoria del proceso.
//
// Cuatro mapas independientes (usuarios, restaurantes, platos, pedidos) comparten un único
// contador de identificadores. Un solo RWMutex protege mapas y contador: las escrituras
// asignan ID e insertan bajo el mismo lock, así ningún lector ve una entidad a medio construir.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/FoodOrder-api/internal/domain"
	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/metrics"
)

var _ repository.Storage = (*Store)(nil)

// Store almacenamiento en memoria. Usar New; el valor cero no es utilizable.
type Store struct {
	mu sync.RWMutex

	users       map[int64]*entity.User
	usernames   map[string]int64 // índice secundario: username -> user ID
	restaurants map[int64]*entity.Restaurant
	menuItems   map[int64]*entity.MenuItem
	orders      map[int64]*entity.Order

	// currentID es el próximo ID a asignar, común a todos los tipos de entidad.
	currentID int64

	sessions *SessionStore
	now      func() time.Time
	log      zerolog.Logger
	metrics  *metrics.Collector
}

type options struct {
	restaurants []entity.Restaurant
	menuItems   []entity.MenuItem
	sessions    *SessionStore
	checkPeriod time.Duration
	now         func() time.Time
	log         zerolog.Logger
	metrics     *metrics.Collector
}

// Option configura el Store.
type Option func(*options)

// WithSeed reemplaza el catálogo inicial (DefaultRestaurants/DefaultMenuItems).
func WithSeed(restaurants []entity.Restaurant, items []entity.MenuItem) Option {
	return func(o *options) {
		o.restaurants = restaurants
		o.menuItems = items
	}
}

// WithClock fija la fuente de tiempo para CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger asigna el logger del store y del almacén de sesiones.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics asigna el colector Prometheus.
func WithMetrics(m *metrics.Collector) Option {
	return func(o *options) { o.metrics = m }
}

// WithSessionCheckPeriod intervalo del barrido de sesiones expiradas.
func WithSessionCheckPeriod(d time.Duration) Option {
	return func(o *options) { o.checkPeriod = d }
}

// WithSessionStore usa un almacén de sesiones ya construido en vez de crear uno.
func WithSessionStore(s *SessionStore) Option {
	return func(o *options) { o.sessions = s }
}

// New construye el store, carga el catálogo inicial y crea el almacén de sesiones.
// Entra en pánico si los datos semilla repiten un identificador.
func New(opts ...Option) *Store {
	o := options{
		restaurants: DefaultRestaurants(),
		menuItems:   DefaultMenuItems(),
		checkPeriod: DefaultCheckPeriod,
		now:         time.Now,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		users:       make(map[int64]*entity.User),
		usernames:   make(map[string]int64),
		restaurants: make(map[int64]*entity.Restaurant),
		menuItems:   make(map[int64]*entity.MenuItem),
		orders:      make(map[int64]*entity.Order),
		currentID:   1,
		sessions:    o.sessions,
		now:         o.now,
		log:         o.log.With().Str("component", "memory_store").Logger(),
		metrics:     o.metrics,
	}
	if err := s.seed(o.restaurants, o.menuItems); err != nil {
		panic(err)
	}
	if s.sessions == nil {
		s.sessions = NewSessionStore(SessionStoreConfig{
			CheckPeriod: o.checkPeriod,
			Logger:      o.log,
			Metrics:     o.metrics,
			Now:         o.now,
		})
	}
	s.log.Info().
		Int("restaurants", len(s.restaurants)).
		Int("menu_items", len(s.menuItems)).
		Int64("next_id", s.currentID).
		Msg("almacenamiento en memoria inicializado")
	return s
}

// seed carga el catálogo con IDs explícitos y deja el contador por encima del mayor ID usado.
// Los IDs deben ser únicos dentro de cada tipo; el contador compartido evita que un
// Create* posterior repita alguno de ellos.
func (s *Store) seed(restaurants []entity.Restaurant, items []entity.MenuItem) error {
	maxID := int64(0)
	check := func(kind string, id int64, exists bool) error {
		if id <= 0 {
			return fmt.Errorf("%w: id semilla de %s %d no positivo", domain.ErrInvariantViolation, kind, id)
		}
		if exists {
			return fmt.Errorf("%w: id semilla de %s %d repetido", domain.ErrInvariantViolation, kind, id)
		}
		maxID = max(maxID, id)
		return nil
	}
	for i := range restaurants {
		r := restaurants[i]
		_, dup := s.restaurants[r.ID]
		if err := check("restaurante", r.ID, dup); err != nil {
			return err
		}
		s.restaurants[r.ID] = &r
	}
	for i := range items {
		m := items[i]
		_, dup := s.menuItems[m.ID]
		if err := check("plato", m.ID, dup); err != nil {
			return err
		}
		s.menuItems[m.ID] = &m
	}
	s.currentID = maxID + 1
	return nil
}

// nextID reserva el siguiente identificador. Requiere s.mu tomado en escritura.
func (s *Store) nextID() int64 {
	id := s.currentID
	s.currentID++
	return id
}

// GetUser obtiene un usuario por ID.
func (s *Store) GetUser(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// GetUserByUsername búsqueda exacta y sensible a mayúsculas.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernames[username]
	if !ok {
		return nil, nil
	}
	return cloneUser(s.users[id]), nil
}

// CreateUser registra un usuario. Un username repetido no consume identificador.
func (s *Store) CreateUser(_ context.Context, in entity.NewUser) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernames[in.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	id := s.nextID()
	if _, exists := s.users[id]; exists {
		s.log.Error().Int64("id", id).Msg("colisión de identificador de usuario")
		return nil, fmt.Errorf("%w: user id %d", domain.ErrInvariantViolation, id)
	}
	u := &entity.User{
		ID:       id,
		Username: in.Username,
		Password: in.Password,
		IsAdmin:  false,
	}
	s.users[id] = u
	s.usernames[u.Username] = id
	s.metrics.UserCreated()
	return cloneUser(u), nil
}

// GetRestaurants lista todos los restaurantes ordenados por ID.
func (s *Store) GetRestaurants(_ context.Context) ([]*entity.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		c := *r
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetRestaurant obtiene un restaurante por ID.
func (s *Store) GetRestaurant(_ context.Context, id int64) (*entity.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.restaurants[id]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

// GetMenuItems recorre todos los platos y devuelve los del restaurante, ordenados por ID.
func (s *Store) GetMenuItems(_ context.Context, restaurantID int64) ([]*entity.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.MenuItem, 0)
	for _, m := range s.menuItems {
		if m.RestaurantID == restaurantID {
			c := *m
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// CreateOrder guarda el pedido con el siguiente ID y la hora actual.
func (s *Store) CreateOrder(_ context.Context, in entity.NewOrder) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	if _, exists := s.orders[id]; exists {
		s.log.Error().Int64("id", id).Msg("colisión de identificador de pedido")
		return nil, fmt.Errorf("%w: order id %d", domain.ErrInvariantViolation, id)
	}
	o := &entity.Order{
		ID:           id,
		UserID:       in.UserID,
		RestaurantID: in.RestaurantID,
		Status:       in.Status,
		Items:        cloneItems(in.Items),
		Total:        in.Total,
		CreatedAt:    s.now(),
	}
	s.orders[id] = o
	s.metrics.OrderCreated()
	return cloneOrder(o), nil
}

// GetOrder obtiene un pedido por ID.
func (s *Store) GetOrder(_ context.Context, id int64) (*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

// GetUserOrders pedidos del usuario en orden de creación.
func (s *Store) GetUserOrders(_ context.Context, userID int64) ([]*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			list = append(list, cloneOrder(o))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// SessionStore devuelve el almacén de sesiones creado junto con el store.
func (s *Store) SessionStore() repository.SessionStore {
	return s.sessions
}

// Sessions acceso tipado al almacén de sesiones (purga manual, tamaño).
func (s *Store) Sessions() *SessionStore {
	return s.sessions
}

// Close detiene el barrido de sesiones. Los datos se pierden al terminar el proceso.
func (s *Store) Close() error {
	return s.sessions.Close()
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = cloneItems(o.Items)
	return &c
}

func cloneItems(items []entity.CartItem) []entity.CartItem {
	if items == nil {
		return nil
	}
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out
}
