package presenter

// CaptureModel provides enabled state access.
type CaptureModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// LifecycleContract narrows what presenter needs from the capture layer.
type LifecycleContract interface {
	Start()
	Stop()
}

// CaptureView updates UI elements affected by capture toggling.
type CaptureView interface {
	PreviewReset()
	SetStatus(status string)
}

const (
	StatusIdle      = "idle"
	StatusCapturing = "capturing"
)

// CapturePresenter toggles the preview feed and the candidate producer that
// reads from it.
type CapturePresenter struct {
	model    CaptureModel
	preview  LifecycleContract
	producer LifecycleContract
	view     CaptureView
}

// NewCapturePresenter wires the presenter. producer may be nil when no
// candidate points should be generated.
func NewCapturePresenter(model CaptureModel, preview, producer LifecycleContract, view CaptureView) *CapturePresenter {
	return &CapturePresenter{model: model, preview: preview, producer: producer, view: view}
}

func (c *CapturePresenter) ready() bool {
	return c != nil && c.model != nil && c.preview != nil && c.view != nil
}

// Enable starts the preview feed, then the producer. Idempotent.
func (c *CapturePresenter) Enable() {
	if !c.ready() || c.model.Enabled() {
		return
	}
	c.preview.Start()
	if c.producer != nil {
		c.producer.Start()
	}
	c.model.SetEnabled(true)
	c.view.SetStatus(StatusCapturing)
}

// Disable stops the producer before the feed it reads from. Idempotent.
func (c *CapturePresenter) Disable() {
	if !c.ready() || !c.model.Enabled() {
		return
	}
	if c.producer != nil {
		c.producer.Stop()
	}
	c.preview.Stop()
	c.model.SetEnabled(false)
	c.view.PreviewReset()
	c.view.SetStatus(StatusIdle)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *CapturePresenter) Toggle() {
	if !c.ready() {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}
