package content

import (
	bolt "go.etcd.io/bbolt"
)

var defaultSections = []Section{
	{
		Key:      SectionTop,
		Title:    "Sample Cafe へようこそ",
		Subtitle: "一杯ごとに、ちいさなひと休みを。",
		Body: "こちらはカフェ・飲食店向けのデモサイトです。写真や文章、色合いを整えることで、" +
			"初めてのお客様にもお店の雰囲気やこだわりが伝わるトップページを表現できます。" +
			"管理画面からテキストや画像を自由に編集して、あなたのお店仕様にカスタマイズしてください。",
		Highlight: "淹れたての時間を、ゆっくりと。",
		Image:     "/static/images/hero.svg",
		ExtraInfo: "signature=季節ごとに変わるシングルオリジンコーヒーと自家製デザート",
	},
	{
		Key:      SectionAccess,
		Title:    "アクセス・営業時間",
		Subtitle: "落ち着いた時間を過ごせる、あなたの隠れ家へ。",
		Body: "こちらのページでは、住所・電話番号・最寄り駅からの道順など、" +
			"ご来店に必要な情報をまとめて案内できます。管理画面から営業時間や" +
			"定休日などを変更して、実際の店舗情報に合わせてご利用ください。",
		Highlight: "平日 09:00〜20:00 / 土日祝 10:00〜22:00",
		Image:     "/static/images/interior.svg",
		ExtraInfo: "住所=デモ市サンプル区サンプル町1-2-3\n電話=000-0000-0000\n定休日=年中無休",
	},
	{
		Key:      SectionReservations,
		Title:    "ご予約について",
		Subtitle: "お席のご予約はお気軽にどうぞ。",
		Body: "お客様がスムーズにお席を予約できるように、予約方法をわかりやすくまとめておくスペースです。" +
			"外部の予約システムへのリンクや、お電話・メールでの受付方法などを自由に記載できます。",
		Highlight: "一人ひとりに合わせた心地よい時間をご用意します。",
		Image:     "/static/images/latte-art.svg",
		ExtraInfo: "cta=Webで予約する|link=#",
	},
	{
		Key:      SectionAbout,
		Title:    "ストーリーとこだわり",
		Subtitle: "一杯のコーヒーに込めた想い。",
		Body: "お店のはじまりや、豆・食材へのこだわり、空間づくりへの想いなどを伝えるためのページです。" +
			"産地とのつながりや、地域への想い、スタッフのストーリーなどを自由に書き換えて、" +
			"ブランドの世界観をお客様に届けてください。",
		Highlight: "心をほどく一杯を、ていねいに。",
		Image:     "/static/images/roastery.svg",
		ExtraInfo: "team=オーナー, バリスタ, パティシエ",
	},
	{
		Key:      SectionFeatures,
		Title:    "ハイライト",
		Subtitle: "訪れるたびにうれしい、小さな特別をご用意しています。",
		Body: "おすすめメニューや季節限定、イベント情報など、お店の『推しポイント』を" +
			"カード形式で一覧表示できます。管理画面から自由に追加・削除・編集可能です。",
		Highlight: "今日の気分に寄り添う一杯を。",
		Image:     "/static/images/dessert.svg",
	},
}

var defaultGallery = []GalleryImage{
	{FilePath: "/static/images/gallery1.svg", Caption: "看板エスプレッソの一杯"},
	{FilePath: "/static/images/gallery2.svg", Caption: "イベントやポップアップの様子"},
	{FilePath: "/static/images/gallery3.svg", Caption: "季節のデザートとドリンクのペアリング"},
}

var defaultFeatures = []Feature{
	{
		Title:       "季節のペアリング",
		Description: "コーヒーごとに相性を考えた、季節限定のデザートセットをご用意しています。",
		Icon:        "fa-leaf",
	},
	{
		Title:       "アコースティックナイト",
		Description: "週末の夜には、地域のアーティストによる生演奏をお楽しみいただけます。",
		Icon:        "fa-music",
	},
	{
		Title:       "バリスタワークショップ",
		Description: "ご自宅でも楽しめるハンドドリップ講座など、少人数制のワークショップを開催しています。",
		Icon:        "fa-chalkboard-teacher",
	},
}

var defaultAnnouncement = Announcement{
	Title:   "本日のおすすめ豆が変わりました",
	Content: "季節のおすすめや新入荷の豆など、最新情報をここでお知らせできます。",
}

// Seed inserts the default café copy. Missing sections are always added;
// the gallery, features and announcements are filled only when empty,
// unless force clears them first.
func (s *Store) Seed(force bool) error {
	now := s.timestamp()
	return s.db.Update(func(tx *bolt.Tx) error {
		if force {
			for _, name := range []string{bucketSections, bucketFeatures, bucketGallery, bucketAnnouncements} {
				if err := tx.DeleteBucket([]byte(name)); err != nil {
					return err
				}
				if _, err := tx.CreateBucket([]byte(name)); err != nil {
					return err
				}
			}
		}

		for _, sec := range defaultSections {
			if err := insertSection(tx, sec); err != nil {
				return err
			}
		}

		if b := tx.Bucket([]byte(bucketGallery)); isEmpty(b) {
			for i, img := range defaultGallery {
				img.DisplayOrder = i + 1
				img.CreatedAt = now
				if err := put(b, &img, func(g *GalleryImage, id int) { g.ID = id }); err != nil {
					return err
				}
			}
		}

		if b := tx.Bucket([]byte(bucketFeatures)); isEmpty(b) {
			for _, f := range defaultFeatures {
				if err := put(b, &f, func(f *Feature, id int) { f.ID = id }); err != nil {
					return err
				}
			}
		}

		if b := tx.Bucket([]byte(bucketAnnouncements)); isEmpty(b) {
			a := defaultAnnouncement
			a.PublishedAt = now
			if err := put(b, &a, func(a *Announcement, id int) { a.ID = id }); err != nil {
				return err
			}
		}
		return nil
	})
}
