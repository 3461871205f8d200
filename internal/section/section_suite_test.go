package section

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stride/internal/motion"
	"github.com/san-kum/stride/internal/site"
)

func TestSectionLifecycle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Section Lifecycle Suite")
}

var _ = Describe("page sections", func() {
	var (
		env         *Env
		controllers []Controller
	)

	BeforeEach(func() {
		env = newTestEnv()
		controllers = nil
		reg := NewRegistry()
		for _, name := range reg.Sections() {
			c, err := reg.New(name)
			Expect(err).NotTo(HaveOccurred())
			controllers = append(controllers, c)
		}
	})

	AfterEach(func() {
		for i := len(controllers) - 1; i >= 0; i-- {
			controllers[i].Unmount()
		}
	})

	mountAll := func() {
		for _, c := range controllers {
			c.Mount(env)
		}
	}

	It("shares one scroll listener across every section", func() {
		mountAll()
		Expect(env.Triggers.Count()).To(BeNumerically(">", 10))
		Expect(env.Win.Listeners()).To(Equal(1))
	})

	It("releases the listener when the last section unmounts", func() {
		mountAll()
		for i, c := range controllers {
			c.Unmount()
			if i < len(controllers)-1 {
				Expect(env.Win.Listeners()).To(Equal(1))
			}
		}
		Expect(env.Win.Listeners()).To(Equal(0))
		Expect(env.Loop.Active()).To(Equal(0))
	})

	It("reveals every section after scrolling to the bottom", func() {
		mountAll()
		for y := 0.0; y <= env.Win.MaxScroll(); y += 200 {
			env.Win.ScrollTo(y)
			run(env, 0.1)
		}
		env.Win.ScrollTo(env.Win.MaxScroll())
		run(env, 5)

		for _, id := range []string{site.ProductsTitle, site.ProductCard(3), site.AthletesQuote, site.TechTitle, site.FooterContent} {
			Expect(env.Doc.Ref(id).Prop(motion.Opacity)).To(BeNumerically("~", 1, 1e-9), id)
		}
	})

	It("puts reversible reveals back once scrolled to the top", func() {
		mountAll()
		env.Win.ScrollTo(env.Win.MaxScroll())
		run(env, 5)
		env.Win.ScrollTo(0)
		run(env, 5)

		Expect(env.Doc.Ref(site.FooterContent).Prop(motion.Y)).To(BeNumerically("~", 100, 1e-9))
		Expect(env.Doc.Ref(site.TechTitle).Prop(motion.RotateX)).To(BeNumerically("~", -90, 1e-9))
		Expect(env.Doc.Ref(site.ProductsTitle).Prop(motion.Opacity)).To(BeNumerically("~", 0, 1e-9))
	})

	It("describes every timeline it built", func() {
		mountAll()
		for _, c := range controllers {
			Expect(c.Timelines()).NotTo(BeEmpty(), c.Name())
			for _, in := range c.Timelines() {
				Expect(in.Section).To(Equal(c.Name()))
				Expect(in.Steps).NotTo(BeEmpty())
			}
		}
	})
})
