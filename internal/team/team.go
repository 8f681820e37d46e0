package team

type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// Members returns the people shown on the About page.
func Members() []Member {
	return []Member{
		{
			ID: "1", Name: "Sophie Laurent", Position: "Founder & Lead Designer",
			Bio:   "Sophie founded Larana Jewelry in 2018 with a vision to create timeless pieces that celebrate femininity and elegance. With over 15 years of experience in jewelry design, she brings a unique perspective that combines traditional craftsmanship with contemporary aesthetics.",
			Image: "/image/team-1.png",
		},
		{
			ID: "2", Name: "Alexander Rodriguez", Position: "Master Craftsman",
			Bio:   "Alex has been creating fine jewelry for over two decades. His precision and attention to detail ensure that every Larana piece meets our exceptional quality standards. He oversees our production process, training our team in traditional techniques.",
			Image: "/image/team-2.png",
		},
		{
			ID: "3", Name: "Isabella Chen", Position: "Creative Director",
			Bio:   "Isabella brings her background in fashion and art to influence Larana's seasonal collections. Her innovative approach to materials and design keeps our brand at the forefront of jewelry trends while maintaining our signature elegant style.",
			Image: "/image/team-1.png",
		},
		{
			ID: "4", Name: "Jonathan Patel", Position: "Head of Operations",
			Bio:   "Jonathan ensures that every aspect of Larana runs smoothly, from sourcing ethical materials to overseeing customer experience. His commitment to sustainability has been instrumental in developing our eco-friendly packaging and practices.",
			Image: "/image/team-2.png",
		},
	}
}
